package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type CounterProperties struct {
	Capacity     int    `cfg:"capacity"`
	HashFunction string `cfg:"hash"`
	Top          int    `cfg:"top"`
	Workers      int    `cfg:"workers"`
	DumpFilename string `cfg:"dumpfilename"`
	LogDir       string `cfg:"logdir"`
	LogToFile    bool   `cfg:"logtofile"`
}

var Properties *CounterProperties

func defaultProperties() *CounterProperties {
	return &CounterProperties{
		Capacity:     2500,
		HashFunction: "hash2",
		Top:          10,
		Workers:      4,
		LogDir:       "logs",
	}
}

func init() {
	Properties = defaultProperties()
}

func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := parse(file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	Properties = p
	return nil
}

// parse 读取 "key value" 形式的配置，key 与 value 之间可以是任意空白，
// 未出现的项保留默认值
func parse(reader io.Reader) (*CounterProperties, error) {
	res := defaultProperties()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		m[strings.ToLower(fields[0])] = strings.Join(fields[1:], " ")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := fillProperties(res, m); err != nil {
		return nil, err
	}
	return res, nil
}

// fillProperties 按 cfg 标签把配置项写入 p 的字段
func fillProperties(p *CounterProperties, m map[string]string) error {
	values := reflect.ValueOf(p).Elem()
	fields := values.Type()
	for i := 0; i < fields.NumField(); i++ {
		field := fields.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		if err := setField(values.Field(i), val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func setField(v reflect.Value, val string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(val)
	case reflect.Int:
		n, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
	case reflect.Bool:
		v.SetBool(val == "yes")
	}
	return nil
}
