package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"chainhash/config"
	"chainhash/lib/logger"
	"chainhash/wordcount"
)

const defaultConfigFile = "wordcount.conf"

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func main() {
	configFile := flag.String("c", "", "config file")
	top := flag.Int("n", 0, "number of words to print, -1 for all, overrides the config file")
	dump := flag.String("dump", "", "write counts to this rdb file, overrides the config file")
	flag.Parse()

	if *configFile == "" && fileExists(defaultConfigFile) {
		*configFile = defaultConfigFile
	}
	if *configFile != "" {
		if err := config.SetupConfigProperties(*configFile); err != nil {
			logger.Fatal("load config failed " + err.Error())
		}
	}
	if *top != 0 {
		config.Properties.Top = *top
	}
	if *dump != "" {
		config.Properties.DumpFilename = *dump
	}
	if config.Properties.LogToFile {
		err := logger.Setup(&logger.Settings{
			Path:       config.Properties.LogDir,
			Name:       "wordcount",
			Ext:        "log",
			TimeFormat: "2006-01-02",
		})
		if err != nil {
			logger.Fatal(err)
		}
	}
	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: chainhash [-c config] [-n top] [-dump file.rdb] file...")
		os.Exit(2)
	}

	ctx := context.Background()
	fc, err := wordcount.NewFileCounterFromConfig(ctx)
	if err != nil {
		logger.Fatal(err)
	}
	defer fc.Close(ctx)

	start := time.Now()
	counter, err := fc.CountFiles(ctx, files)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("counted %d distinct words in %d files, took %s", counter.Size(), len(files), time.Since(start))

	for _, wc := range counter.Top(config.Properties.Top) {
		fmt.Printf("%s %d\n", wc.Word, wc.Count)
	}
	if config.Properties.DumpFilename != "" {
		if err = wordcount.DumpFile(config.Properties.DumpFilename, counter); err != nil {
			logger.Fatal("dump failed " + err.Error())
		}
	}
}
