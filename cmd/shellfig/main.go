package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shellfig/shellfig/internal/agent"
	"github.com/shellfig/shellfig/internal/cmdexec"
	"github.com/shellfig/shellfig/internal/config"
	"github.com/shellfig/shellfig/internal/core"
	"github.com/shellfig/shellfig/internal/gitstatus"
	"github.com/shellfig/shellfig/internal/prompt"
	"github.com/shellfig/shellfig/internal/shellgen"
	"github.com/shellfig/shellfig/internal/styles"
	"go.uber.org/zap"
)

var BUILD_VERSION = "dev"

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `shellfig - shell configuration and prompt generator

USAGE:
  shellfig <command> [options]

COMMANDS:
  init      Print the session init script (for eval in your rc file)
  install   Append the init eval line to your rc file
  hook      Render the prompt for one cycle (invoked by the shell hook)
  agent     Ensure ssh/gpg agents are running; print env-loading code
  preview   Show sample prompts for the current configuration

SETUP:
  shellfig install               # once
  exec $SHELL                    # or open a new terminal

  Configuration lives in ~/.config/shellfig/config.yaml.

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		fmt.Print(helpText)
		flag.PrintDefaults()
		if flag.NArg() == 0 && !*helpFlag {
			os.Exit(1)
		}
		return
	}

	cfg := loadConfig()

	// Logs go to a file only: stdout is shell code the host shell evals,
	// and stderr shows up in the middle of the user's terminal.
	logger, err := initializeLogger(cfg)
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("shellfig: %v", err)))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	args := flag.Args()

	switch args[0] {
	case "init":
		return runInit(cfg, args[1:])
	case "install":
		return runInstall(args[1:])
	case "hook":
		return runHook(ctx, cfg, logger, args[1:])
	case "agent":
		return runAgent(ctx, cfg, logger)
	case "preview":
		return runPreview(cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runInit(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	shell := fs.String("shell", shellgen.DetectShell(), "target shell (bash or zsh)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	script, err := shellgen.InitScript(cfg, *shell, execPath)
	if err != nil {
		return err
	}

	fmt.Print(script)
	return nil
}

func runInstall(args []string) error {
	fs := flag.NewFlagSet("install", flag.ExitOnError)
	shell := fs.String("shell", shellgen.DetectShell(), "target shell (bash or zsh)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rcPath, err := shellgen.RCPath(*shell, core.HomeDir())
	if err != nil {
		return err
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	written, err := shellgen.InstallHook(*shell, rcPath, execPath)
	if err != nil {
		return err
	}

	if written {
		fmt.Fprintln(os.Stderr, styles.LOG(fmt.Sprintf("installed shellfig hook in %s", rcPath)))
	} else {
		fmt.Fprintln(os.Stderr, styles.LOG(fmt.Sprintf("shellfig hook already installed in %s", rcPath)))
	}
	return nil
}

func runHook(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("hook", flag.ExitOnError)
	shell := fs.String("shell", "bash", "target shell (bash or zsh)")
	status := fs.Int("status", 0, "exit status of the last command")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dialect, err := prompt.DialectFor(*shell)
	if err != nil {
		return err
	}

	query := gitstatus.NewExecQuery(&cmdexec.RealCommander{}, logger)
	pctx := prompt.NewContext(ctx, *status, query)

	renderer := prompt.NewRenderer(dialect,
		prompt.WithSymbols(cfg.Prompt.Symbol, cfg.Prompt.Continuation))
	rendered := renderer.Render(pctx)

	script, err := shellgen.PromptAssignments(*shell, rendered)
	if err != nil {
		return err
	}

	fmt.Print(script)
	return nil
}

func runAgent(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	bootstrap := agent.NewBootstrap(&cmdexec.RealCommander{}, logger, core.SSHAgentFile())

	if cfg.Agent.SSH {
		code, err := bootstrap.EnsureSSH(ctx)
		if err != nil {
			return err
		}
		fmt.Print(code)
	}

	if cfg.Agent.GPG {
		bootstrap.EnsureGPG(ctx)
	}

	return nil
}

func loadConfig() *config.Config {
	// Config problems are non-fatal; the shell must always get a prompt.
	loader := config.NewLoader(nil)
	result, err := loader.LoadFromFile(core.ConfigFile())
	if err != nil || result == nil {
		return config.DefaultConfig()
	}
	return result.Config
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	logLevel, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	return loggerConfig.Build()
}
