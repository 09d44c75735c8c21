// Package main is an entrypoint for application
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/Semior001/newsly/app/cmd"
	"github.com/Semior001/newsly/pkg/logx"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var opts struct {
	Home      cmd.Home      `command:"home" description:"print top stories, most popular and home sections"`
	Top       cmd.Top       `command:"top" description:"print top stories"`
	Popular   cmd.Popular   `command:"popular" description:"print most popular stories"`
	Section   cmd.Section   `command:"section" description:"print stories of a section"`
	Search    cmd.Search    `command:"search" description:"search articles"`
	Books     cmd.Books     `command:"books" description:"print a best-seller list"`
	Movies    cmd.Movies    `command:"movies" description:"print movie reviews"`
	Read      cmd.Read      `command:"read" description:"print readable text of an article"`
	Favorites cmd.Favorites `command:"favorites" description:"manage favorite articles"`
	SignUp    cmd.SignUp    `command:"signup" description:"register a local account"`
	Login     cmd.Login     `command:"login" description:"log in"`
	Logout    cmd.Logout    `command:"logout" description:"log out"`
	WhoAmI    cmd.WhoAmI    `command:"whoami" description:"print the logged in user"`
	Profile   cmd.Profile   `command:"profile" description:"update profile of the logged in user"`
	Subscribe cmd.Subscribe `command:"subscribe" description:"subscribe to the newsletter"`

	NYT struct {
		APIKey        string        `long:"api-key" env:"API_KEY" description:"content API key"`
		BaseURL       string        `long:"base-url" env:"BASE_URL" default:"https://api.nytimes.com/svc/" description:"content API base url"`
		Timeout       time.Duration `long:"timeout" env:"TIMEOUT" default:"15s" description:"timeout for requests"`
		MaxConcurrent int           `long:"max-concurrent" env:"MAX_CONCURRENT" default:"4" description:"max concurrent requests"`
	} `group:"nyt" namespace:"nyt" env-namespace:"NYT"`

	StorePath string `long:"store-path" env:"STORE_PATH" description:"path to the bolt file, xdg data dir by default"`
	Config    string `long:"config" env:"CONFIG" description:"path to the config file, xdg config dir by default"`
	LogFile   string `long:"log-file" env:"LOG_FILE" description:"write logs to the rotated file instead of stderr"`
	JSONLogs  bool   `long:"json-logs" env:"JSON_LOGS" description:"turn on json logs"`
	Debug     bool   `long:"dbg" env:"DEBUG" description:"turn on debug mode"`
}

var version = "unknown"

func getVersion() string {
	v, ok := debug.ReadBuildInfo()
	if !ok || v.Main.Version == "(devel)" {
		return version
	}
	return v.Main.Version
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(command flags.Commander, args []string) error {
		setupLog()
		slog.Debug("starting newsly", slog.String("version", getVersion()))

		if c, ok := command.(cmd.CommonCommander); ok {
			c.SetCommon(cmd.CommonOpts{
				NYT: cmd.NYTOpts{
					APIKey:        opts.NYT.APIKey,
					BaseURL:       opts.NYT.BaseURL,
					Timeout:       opts.NYT.Timeout,
					MaxConcurrent: opts.NYT.MaxConcurrent,
				},
				StorePath:  opts.StorePath,
				ConfigPath: opts.Config,
				Debug:      opts.Debug,
				Out:        os.Stdout,
			})
		}

		if err := command.Execute(args); err != nil {
			slog.Error("failed to execute command", slog.Any("err", err))
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return nil
	}

	// after failure command does not return non-zero code
	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			slog.Error("failed to parse flags", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func setupLog() {
	handler := slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelWarn,
		ReplaceAttr: nil,
	}

	if opts.Debug {
		handler.Level = slog.LevelDebug
		handler.AddSource = true
	}

	var w io.Writer = os.Stderr
	if opts.LogFile != "" {
		if !opts.Debug {
			handler.Level = slog.LevelInfo
		}
		w = &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		}
	}

	var h slog.Handler = handler.NewTextHandler(w)
	if opts.JSONLogs {
		h = handler.NewJSONHandler(w)
	}

	slog.SetDefault(slog.New(logx.NewChain(h, logx.RequestID)))
}
