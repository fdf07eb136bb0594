package chain

import (
	"fmt"
	"strings"
)

// Consumer 遍历时对每个条目调用，返回 false 时停止
type Consumer[K comparable, V any] func(key K, value V) bool

type Entry[K comparable, V any] struct {
	Key   K
	Value V
	next  *Entry[K, V]
}

func (e *Entry[K, V]) Next() *Entry[K, V] {
	return e.next
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// Chain 是单向链表，新条目总是插在表头。
// 同一个 key 最多只应出现一次，这一点由使用者保证
type Chain[K comparable, V any] struct {
	head *Entry[K, V]
	size int
}

func NewChain[K comparable, V any]() *Chain[K, V] {
	return &Chain[K, V]{}
}

func (c *Chain[K, V]) Size() int {
	if c == nil {
		return 0
	}
	return c.size
}

func (c *Chain[K, V]) Head() *Entry[K, V] {
	if c == nil {
		return nil
	}
	return c.head
}

func (c *Chain[K, V]) IsEmpty() bool {
	return c == nil || c.head == nil
}

func (c *Chain[K, V]) AddFront(key K, value V) {
	if c == nil {
		panic("Chain is nil")
	}
	c.head = &Entry[K, V]{Key: key, Value: value, next: c.head}
	c.size++
}

// Contains 返回第一个 key 相等的条目，找不到时返回 nil
func (c *Chain[K, V]) Contains(key K) *Entry[K, V] {
	for e := c.Head(); e != nil; e = e.next {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Remove 只删除第一个匹配的条目
func (c *Chain[K, V]) Remove(key K) bool {
	if c.IsEmpty() {
		return false
	}
	if c.head.Key == key {
		c.head = c.head.next
		c.size--
		return true
	}
	prev := c.head
	for cur := prev.next; cur != nil; prev, cur = cur, cur.next {
		if cur.Key == key {
			prev.next = cur.next
			c.size--
			return true
		}
	}
	return false
}

func (c *Chain[K, V]) ForEach(consumer Consumer[K, V]) {
	for e := c.Head(); e != nil; e = e.next {
		if !consumer(e.Key, e.Value) {
			return
		}
	}
}

func (c *Chain[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := c.Head(); e != nil; e = e.next {
		if e != c.head {
			sb.WriteString(" -> ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
