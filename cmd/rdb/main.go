package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	rdb "github.com/terakoya76/rdb-sample"
	"github.com/terakoya76/rdb-sample/memory"
	"github.com/terakoya76/rdb-sample/sql"
)

type options struct {
	Config   string `short:"c" long:"config" description:"path to a yaml config file"`
	Database string `long:"database" default:"default" description:"database name"`
	LogLevel string `long:"log-level" default:"info" description:"logrus log level"`
}

type config struct {
	Database string `yaml:"database"`
	LogLevel string `yaml:"log_level"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	if opts.Config != "" {
		if err := loadConfig(opts.Config, &opts); err != nil {
			logrus.WithError(err).Fatal("cannot load config")
		}
	}

	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("invalid log level")
	}
	logrus.SetLevel(level)

	engine := rdb.New(memory.NewDatabase(opts.Database))
	repl(engine, os.Stdin, os.Stdout)
}

func loadConfig(path string, opts *options) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var cfg config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return err
	}
	if cfg.Database != "" {
		opts.Database = cfg.Database
	}
	if cfg.LogLevel != "" {
		opts.LogLevel = cfg.LogLevel
	}
	return nil
}

func repl(engine *rdb.Engine, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "rdb> ")
		if !scanner.Scan() {
			return
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "exit") || strings.EqualFold(query, "quit") {
			return
		}

		ctx := sql.NewEmptyContext()
		_, iter, err := engine.Query(ctx, query)
		if err != nil {
			fmt.Fprintf(out, "ERROR: %v\n", err)
			continue
		}

		count := 0
		for {
			tuple, err := iter.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				fmt.Fprintf(out, "ERROR: %v\n", err)
				break
			}
			fmt.Fprintln(out, tuple)
			count++
		}
		if count == 0 {
			fmt.Fprintln(out, "Empty set")
		}
	}
}
