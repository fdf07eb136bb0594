package set

import "chainhash/datastruct/dict"

type Consumer func(string) bool

// HashSet 用 ChainedHashMap 的 key 保存成员
type HashSet struct {
	m *dict.ChainedHashMap[string, struct{}]
}

func NewHashSet(capacity int, hashFn dict.HashFunc[string], members ...string) (*HashSet, error) {
	m, err := dict.NewChainedHashMap[string, struct{}](capacity, hashFn)
	if err != nil {
		return nil, err
	}
	res := &HashSet{m: m}
	for _, str := range members {
		res.Add(str)
	}
	return res, nil
}

func (s *HashSet) Size() int {
	return s.m.Size()
}

func (s *HashSet) Add(val string) (ok bool) {
	if s.m.ContainsKey(val) {
		return false
	}
	s.m.Put(val, struct{}{})
	return true
}

func (s *HashSet) Contains(val string) bool {
	return s.m.ContainsKey(val)
}

func (s *HashSet) Remove(val string) (ok bool) {
	return s.m.Remove(val)
}

func (s *HashSet) ForEach(c Consumer) {
	s.m.ForEach(func(key string, _ struct{}) bool {
		return c(key)
	})
}

func (s *HashSet) Members() []string {
	return s.m.Keys()
}

func (s *HashSet) Clear() {
	s.m.Clear()
}
