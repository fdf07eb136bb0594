package dict

import (
	"errors"
	"fmt"
	"strings"

	"chainhash/datastruct/chain"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNilHashFunc     = errors.New("hash function is nil")
)

// ChainedHashMap 是以链地址法解决冲突的哈希表，容量只在调用 ResizeTable 时改变。
// 它不是线程安全的。
//
// 原始设计没有枚举全部 key 的接口，ForEach 与 Keys 是在此之上的扩展
type ChainedHashMap[K comparable, V any] struct {
	buckets  []*chain.Chain[K, V]
	capacity int
	hashFn   HashFunc[K]
	size     int
}

var _ Dict[string, int] = (*ChainedHashMap[string, int])(nil)

func NewChainedHashMap[K comparable, V any](capacity int, hashFn HashFunc[K]) (*ChainedHashMap[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if hashFn == nil {
		return nil, ErrNilHashFunc
	}
	return &ChainedHashMap[K, V]{
		buckets:  makeBuckets[K, V](capacity),
		capacity: capacity,
		hashFn:   hashFn,
	}, nil
}

func makeBuckets[K comparable, V any](capacity int) []*chain.Chain[K, V] {
	buckets := make([]*chain.Chain[K, V], capacity)
	for i := range buckets {
		buckets[i] = chain.NewChain[K, V]()
	}
	return buckets
}

func (m *ChainedHashMap[K, V]) Size() int {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	return m.size
}

func (m *ChainedHashMap[K, V]) Capacity() int {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	return m.capacity
}

// bucketAt 返回 key 所在的桶
func (m *ChainedHashMap[K, V]) bucketAt(key K) *chain.Chain[K, V] {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	return m.buckets[m.hashFn(key)%uint64(m.capacity)]
}

// Put 对已存在的 key 先删除旧条目再插入新条目，因此更新后的条目总位于链表头部
func (m *ChainedHashMap[K, V]) Put(key K, value V) {
	bucket := m.bucketAt(key)
	if bucket.IsEmpty() {
		bucket.AddFront(key, value)
		m.size++
		return
	}
	if bucket.Remove(key) {
		m.size--
	}
	bucket.AddFront(key, value)
	m.size++
}

func (m *ChainedHashMap[K, V]) Get(key K) (value V, ok bool) {
	if e := m.bucketAt(key).Contains(key); e != nil {
		return e.Value, true
	}
	return
}

func (m *ChainedHashMap[K, V]) ContainsKey(key K) bool {
	return m.bucketAt(key).Contains(key) != nil
}

// Remove 对不存在的 key 不做任何事
func (m *ChainedHashMap[K, V]) Remove(key K) (ok bool) {
	if m.bucketAt(key).Remove(key) {
		m.size--
		return true
	}
	return false
}

// Clear 清空所有条目，但保留当前容量
func (m *ChainedHashMap[K, V]) Clear() {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	m.buckets = makeBuckets[K, V](m.capacity)
	m.size = 0
}

// ResizeTable 把所有条目按新容量重新散列到新的桶数组中
func (m *ChainedHashMap[K, V]) ResizeTable(capacity int) error {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	oldBuckets := m.buckets
	m.buckets = makeBuckets[K, V](capacity)
	m.capacity = capacity
	m.size = 0
	for _, bucket := range oldBuckets {
		for !bucket.IsEmpty() {
			head := bucket.Head()
			m.Put(head.Key, head.Value)
			bucket.Remove(head.Key)
		}
	}
	return nil
}

func (m *ChainedHashMap[K, V]) EmptyBuckets() int {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	count := 0
	for _, bucket := range m.buckets {
		if bucket.IsEmpty() {
			count++
		}
	}
	return count
}

// TableLoad 返回负载因子 size / capacity，仅用于观察，不会触发扩容
func (m *ChainedHashMap[K, V]) TableLoad() float64 {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	return float64(m.size) / float64(m.capacity)
}

// ForEach 按桶的下标顺序遍历，桶内从链表头开始
func (m *ChainedHashMap[K, V]) ForEach(p Processor[K, V]) {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	stopped := false
	for _, bucket := range m.buckets {
		bucket.ForEach(func(key K, value V) bool {
			stopped = !p(key, value)
			return !stopped
		})
		if stopped {
			return
		}
	}
}

func (m *ChainedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	m.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *ChainedHashMap[K, V]) String() string {
	if m == nil {
		panic("ChainedHashMap is nil")
	}
	var sb strings.Builder
	for i, bucket := range m.buckets {
		fmt.Fprintf(&sb, "%d: %s\n", i, bucket)
	}
	return sb.String()
}
