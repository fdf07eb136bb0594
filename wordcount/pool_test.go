package wordcount

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainhash/datastruct/dict"
	"chainhash/lib/hashfunc"

	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	files := make([]string, len(contents))
	for i, text := range contents {
		files[i] = filepath.Join(dir, fmt.Sprintf("f%d.txt", i))
		if err := os.WriteFile(files[i], []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return files
}

func TestCountFiles(t *testing.T) {
	ctx := context.Background()
	fc, err := NewFileCounter(ctx, 13, hashfunc.Hash2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer fc.Close(ctx)

	var contents []string
	for i := 0; i < 6; i++ {
		contents = append(contents, strings.Repeat("apple banana ", i+1)+"cherry\n")
	}
	files := writeFiles(t, contents...)
	total, err := fc.CountFiles(ctx, files)
	if err != nil {
		t.Fatal(err)
	}
	want := []WordCount{{"banana", 21}, {"apple", 21}, {"cherry", 6}}
	if diff := cmp.Diff(want, total.Top(-1)); diff != "" {
		t.Errorf("CountFiles mismatch (-want +got):\n%s", diff)
	}

	// 池中的 Counter 归还时已清空，再次统计不会带上一次的结果
	total, err = fc.CountFiles(ctx, files[:1])
	if err != nil {
		t.Fatal(err)
	}
	want = []WordCount{{"cherry", 1}, {"banana", 1}, {"apple", 1}}
	if diff := cmp.Diff(want, total.Top(-1)); diff != "" {
		t.Errorf("second CountFiles mismatch (-want +got):\n%s", diff)
	}
}

func TestCountFilesMissing(t *testing.T) {
	ctx := context.Background()
	fc, err := NewFileCounter(ctx, 13, hashfunc.Hash1, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer fc.Close(ctx)
	files := writeFiles(t, "one two\n")
	files = append(files, filepath.Join(t.TempDir(), "missing.txt"))
	if _, err = fc.CountFiles(ctx, files); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestNewFileCounterInvalidCapacity(t *testing.T) {
	if _, err := NewFileCounter(context.Background(), 0, hashfunc.Hash1, 1); !errors.Is(err, dict.ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}
