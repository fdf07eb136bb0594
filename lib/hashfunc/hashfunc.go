// Package hashfunc 提供两个可复现的字符串哈希函数，任何实现都应得到逐位相同的结果
package hashfunc

import (
	"errors"
	"fmt"
)

var ErrUnknownHashFunc = errors.New("unknown hash function")

// Hash1 是所有字符码点之和
func Hash1(key string) uint64 {
	var hash uint64
	for _, c := range key {
		hash += uint64(c)
	}
	return hash
}

// Hash2 以字符位置（从 1 开始，按码点计数）对码点加权求和
func Hash2(key string) uint64 {
	var hash, index uint64
	for _, c := range key {
		index++
		hash += index * uint64(c)
	}
	return hash
}

// ByName 根据配置中的名字选出哈希函数
func ByName(name string) (func(string) uint64, error) {
	switch name {
	case "hash1":
		return Hash1, nil
	case "hash2":
		return Hash2, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHashFunc, name)
}
