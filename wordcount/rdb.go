package wordcount

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hdt3213/rdb/core"
	rdb "github.com/hdt3213/rdb/parser"

	"chainhash/lib/logger"
)

// DumpKey 是导出文件中保存计数的 hash 对象的 key
const DumpKey = "wordcount"

// WriteRDB 把计数以 Redis RDB 格式写出：一个 hash 对象，字段为单词，值为十进制次数
func WriteRDB(w io.Writer, c *Counter) error {
	encoder := core.NewEncoder(w).EnableCompress()
	if err := encoder.WriteHeader(); err != nil {
		return err
	}
	auxMap := map[string]string{
		"redis-ver":  "6.0.0",
		"redis-bits": "64",
		"ctime":      strconv.FormatInt(time.Now().Unix(), 10),
	}
	for k, v := range auxMap {
		if err := encoder.WriteAux(k, v); err != nil {
			return err
		}
	}
	if c.Size() > 0 {
		if err := encoder.WriteDBHeader(0, 1, 0); err != nil {
			return err
		}
		hash := make(map[string][]byte, c.Size())
		for _, wc := range c.All() {
			hash[wc.Word] = []byte(strconv.Itoa(wc.Count))
		}
		if err := encoder.WriteHashMapObject(DumpKey, hash); err != nil {
			return err
		}
	}
	return encoder.WriteEnd()
}

// LoadRDB 读取 WriteRDB 写出的文件，把其中的计数累加到 c 上
func LoadRDB(r io.Reader, c *Counter) error {
	decoder := rdb.NewDecoder(r)
	var err error
	parseErr := decoder.Parse(func(obj rdb.RedisObject) bool {
		if obj.GetKey() != DumpKey || obj.GetType() != rdb.HashType {
			return true
		}
		hashObj := obj.(*rdb.HashObject)
		for word, v := range hashObj.Hash {
			n, convErr := strconv.Atoi(string(v))
			if convErr != nil {
				err = fmt.Errorf("count of %q: %w", word, convErr)
				return false
			}
			c.AddN(word, n)
		}
		return true
	})
	if parseErr != nil {
		return parseErr
	}
	return err
}

// DumpFile 先写临时文件再重命名，避免留下写了一半的文件
func DumpFile(filename string, c *Counter) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "wordcount-*.rdb")
	if err != nil {
		return err
	}
	if err = WriteRDB(tmp, c); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return err
	}
	logger.Infof("dumped %d words to %s", c.Size(), filename)
	return nil
}

func LoadFile(filename string, c *Counter) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	return LoadRDB(f, c)
}
