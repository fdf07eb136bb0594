package dict

// Processor 遍历时对每个键值对调用，返回 false 时停止
type Processor[K comparable, V any] func(key K, value V) bool

// HashFunc 把 key 映射为非负整数，表内再对容量取模
type HashFunc[K comparable] func(key K) uint64

type Dict[K comparable, V any] interface {
	Size() int
	Put(key K, value V)
	Get(key K) (value V, ok bool)
	ContainsKey(key K) bool
	Remove(key K) (ok bool)
	ForEach(p Processor[K, V])
	Keys() []K
	Clear()
}
