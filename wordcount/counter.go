package wordcount

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"chainhash/config"
	"chainhash/datastruct/dict"
	"chainhash/datastruct/set"
	"chainhash/lib/hashfunc"
)

// 单词：一个字符，或首尾为字符、中间可含撇号的串
var wordPattern = regexp.MustCompile(`([\p{L}\p{N}_][\p{L}\p{N}_']*[\p{L}\p{N}_]|[\p{L}\p{N}_])`)

type WordCount struct {
	Word  string
	Count int
}

// Counter 统计单词出现次数。表本身不提供 key 的枚举，因此另外用一个集合记录出现过的单词
type Counter struct {
	table *dict.ChainedHashMap[string, int]
	words *set.HashSet
}

func NewCounter(capacity int, hashFn dict.HashFunc[string]) (*Counter, error) {
	table, err := dict.NewChainedHashMap[string, int](capacity, hashFn)
	if err != nil {
		return nil, err
	}
	words, err := set.NewHashSet(capacity, hashFn)
	if err != nil {
		return nil, err
	}
	return &Counter{table: table, words: words}, nil
}

// NewCounterFromConfig 按 config.Properties 中的容量与哈希函数创建 Counter
func NewCounterFromConfig() (*Counter, error) {
	hashFn, err := hashfunc.ByName(config.Properties.HashFunction)
	if err != nil {
		return nil, err
	}
	return NewCounter(config.Properties.Capacity, hashFn)
}

func Tokenize(line string) []string {
	words := wordPattern.FindAllString(line, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

func (c *Counter) Add(word string) {
	c.AddN(word, 1)
}

func (c *Counter) AddN(word string, n int) {
	if c.table.ContainsKey(word) {
		value, _ := c.table.Get(word)
		c.table.Put(word, value+n)
		return
	}
	c.table.Put(word, n)
	c.words.Add(word)
}

func (c *Counter) Count(word string) (int, bool) {
	return c.table.Get(word)
}

// Size 返回不同单词的个数
func (c *Counter) Size() int {
	return c.words.Size()
}

// CountReader 逐行读取并统计，行长度没有上限，返回读到的单词总数
func (c *Counter) CountReader(r io.Reader) (int, error) {
	reader := bufio.NewReader(r)
	total := 0
	for {
		line, err := reader.ReadString('\n')
		for _, w := range Tokenize(line) {
			c.Add(w)
			total++
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func (c *Counter) CountFile(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	return c.CountReader(f)
}

// Merge 把 other 的计数累加到 c 上
func (c *Counter) Merge(other *Counter) {
	other.words.ForEach(func(word string) bool {
		n, _ := other.table.Get(word)
		c.AddN(word, n)
		return true
	})
}

func (c *Counter) Reset() {
	c.table.Clear()
	c.words.Clear()
}

func (c *Counter) All() []WordCount {
	res := make([]WordCount, 0, c.words.Size())
	c.words.ForEach(func(word string) bool {
		n, _ := c.table.Get(word)
		res = append(res, WordCount{Word: word, Count: n})
		return true
	})
	return res
}

// Top 按出现次数降序返回前 number 个单词，次数相同时按单词降序。
// number 为 0 时返回空列表，为负数时返回全部
func (c *Counter) Top(number int) []WordCount {
	res := c.All()
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Word > res[j].Word
	})
	if number >= 0 && number < len(res) {
		res = res[:number]
	}
	return res
}

// TopWords 统计文件 source 中的单词，返回最常见的 number 个
func TopWords(source string, number int) ([]WordCount, error) {
	c, err := NewCounterFromConfig()
	if err != nil {
		return nil, err
	}
	if _, err = c.CountFile(source); err != nil {
		return nil, err
	}
	return c.Top(number), nil
}
