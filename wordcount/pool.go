package wordcount

import (
	"context"
	"errors"
	"fmt"
	"sync"

	pool "github.com/jolestar/go-commons-pool/v2"

	"chainhash/config"
	"chainhash/datastruct/dict"
	"chainhash/lib/hashfunc"
	"chainhash/lib/logger"
)

type counterFactory struct {
	capacity int
	hashFn   dict.HashFunc[string]
}

func (f *counterFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	c, err := NewCounter(f.capacity, f.hashFn)
	if err != nil {
		return nil, err
	}
	return pool.NewPooledObject(c), nil
}

func (f *counterFactory) DestroyObject(_ context.Context, obj *pool.PooledObject) error {
	c, ok := obj.Object.(*Counter)
	if !ok {
		return errors.New("type mismatch")
	}
	c.Reset()
	return nil
}

func (f *counterFactory) ValidateObject(_ context.Context, _ *pool.PooledObject) bool {
	return true
}

func (f *counterFactory) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

// PassivateObject 在归还时清空 Counter，下次借出时总是空的
func (f *counterFactory) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	c, ok := obj.Object.(*Counter)
	if !ok {
		return errors.New("type mismatch")
	}
	c.Reset()
	return nil
}

// FileCounter 并发统计多个文件。每个文件由一个从池中借出的 Counter 单独统计，
// Counter 之间不共享，结果在锁保护下合并
type FileCounter struct {
	pool     *pool.ObjectPool
	capacity int
	hashFn   dict.HashFunc[string]
}

func NewFileCounter(ctx context.Context, capacity int, hashFn dict.HashFunc[string], workers int) (*FileCounter, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", dict.ErrInvalidCapacity, capacity)
	}
	if workers <= 0 {
		workers = 1
	}
	poolConfig := pool.NewDefaultPoolConfig()
	poolConfig.MaxTotal = workers
	poolConfig.MaxIdle = workers
	factory := &counterFactory{capacity: capacity, hashFn: hashFn}
	return &FileCounter{
		pool:     pool.NewObjectPool(ctx, factory, poolConfig),
		capacity: capacity,
		hashFn:   hashFn,
	}, nil
}

func NewFileCounterFromConfig(ctx context.Context) (*FileCounter, error) {
	hashFn, err := hashfunc.ByName(config.Properties.HashFunction)
	if err != nil {
		return nil, err
	}
	return NewFileCounter(ctx, config.Properties.Capacity, hashFn, config.Properties.Workers)
}

func (fc *FileCounter) CountFiles(ctx context.Context, files []string) (*Counter, error) {
	total, err := NewCounter(fc.capacity, fc.hashFn)
	if err != nil {
		return nil, err
	}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}
	for _, file := range files {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			obj, err := fc.pool.BorrowObject(ctx)
			if err != nil {
				setErr(err)
				return
			}
			c := obj.(*Counter)
			defer func() {
				if err := fc.pool.ReturnObject(ctx, c); err != nil {
					logger.Warn("return counter failed " + err.Error())
				}
			}()
			n, err := c.CountFile(file)
			if err != nil {
				logger.Error("count " + file + " failed " + err.Error())
				setErr(err)
				return
			}
			logger.Infof("counted %d words (%d distinct) in %s", n, c.Size(), file)
			mu.Lock()
			defer mu.Unlock()
			total.Merge(c)
		}(file)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return total, nil
}

func (fc *FileCounter) Close(ctx context.Context) {
	fc.pool.Close(ctx)
}
