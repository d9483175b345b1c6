package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mealcraft/ingredientparser/cmd"
	"github.com/mealcraft/ingredientparser/internal/logger"
	"github.com/mealcraft/ingredientparser/pkg/ingredient"
)

const (
	appName     = "ingredientparser"
	defaultSize = 4096
)

var (
	Version     = "0.1.0"
	CommitSha   = "unknown"
	FullVersion = Version + "-" + CommitSha
)

var appDir = filepath.Join(xdg.StateHome, appName)

func init() {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		panic(fmt.Sprintf("Error creating state directory: %v", err))
	}

	logLevel := os.Getenv("INGREDIENTPARSER_LOG")
	if logLevel == "" {
		logLevel = "info"
	}

	if err := logger.Init(logger.DefaultPath(), logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}

	crashFilePath := filepath.Join(appDir, "crash")
	if f, err := os.Create(crashFilePath); err == nil {
		_ = debug.SetCrashOutput(f, debug.CrashOptions{})
	}
}

// AppConfig holds application configuration
type AppConfig struct {
	inputFile   string
	target      string
	configPath  string
	asJSON      bool
	showVersion bool
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// readInput reads ingredient lines from file or stdin with buffering
func readInput(inputFile string) ([]string, error) {
	var reader io.Reader
	var closer io.Closer

	if inputFile != "" {
		file, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		reader = file
		closer = file
	} else {
		reader = os.Stdin
	}

	defer func() {
		if closer != nil {
			closer.Close() // nolint: errcheck
		}
	}()

	bufferedReader := bufio.NewReaderSize(reader, defaultSize)
	var lines []string

	for {
		line, err := bufferedReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSuffix(line, "\n")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}

		if err == io.EOF {
			break
		}
	}

	return lines, nil
}

// writeOutput writes output to target file or stdout with buffering
func writeOutput(target, content string) error {
	if target == "" {
		fmt.Print(content)
		return nil
	}

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating target file: %w", err)
	}
	defer file.Close() // nolint: errcheck

	writer := bufio.NewWriterSize(file, defaultSize)
	defer writer.Flush() // nolint: errcheck

	if _, err := writer.WriteString(content); err != nil {
		return fmt.Errorf("writing to target file: %w", err)
	}

	return nil
}

var (
	foodStyle  = color.New(color.FgHiGreen)
	qtyStyle   = color.New(color.FgHiYellow)
	faintStyle = color.New(color.Faint)
)

// formatPretty renders parsed lines as an aligned two column listing:
// the measurement on the left, the food with its descriptors on the right.
func formatPretty(results []ingredient.Parsed) string {
	measurements := make([]string, len(results))
	width := 0
	for i, r := range results {
		m := strings.TrimSpace(r.Quantity + " " + r.Unit)
		if m == "" {
			m = "-"
		}
		measurements[i] = m
		if w := runewidth.StringWidth(m); w > width {
			width = w
		}
	}

	var b strings.Builder
	for i, r := range results {
		qtyStyle.Fprint(&b, runewidth.FillRight(measurements[i], width))
		b.WriteString("  ")
		food := r.Food
		if food == "" {
			food = "?"
		}
		foodStyle.Fprint(&b, food)

		var extras []string
		if len(r.Prep) > 0 {
			extras = append(extras, strings.Join(r.Prep, ", "))
		}
		if r.GramWeight != "" {
			extras = append(extras, "~"+r.GramWeight+" g")
		}
		if !r.IsRequired {
			extras = append(extras, "optional")
		}
		if len(extras) > 0 {
			faintStyle.Fprintf(&b, "  (%s)", strings.Join(extras, "; "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatJSON(results []ingredient.Parsed) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}
	return string(data) + "\n", nil
}

// runApp runs the main application logic
func runApp(config *AppConfig, args []string) error {
	if config.showVersion {
		fmt.Printf("%s version: %s\n", appName, FullVersion)
		return nil
	}

	fileConfig, err := LoadConfigFromFile(config.configPath)
	if err != nil {
		return err
	}

	if fileConfig.Core.LogLevel != "" && os.Getenv("INGREDIENTPARSER_LOG") == "" {
		if err := logger.Init(logger.DefaultPath(), fileConfig.Core.LogLevel); err != nil {
			slog.Warn("could not apply configured log level", "error", err)
		}
	}

	var lines []string
	if len(args) > 0 {
		lines = args
	} else {
		lines, err = readInput(config.inputFile)
		if err != nil {
			return err
		}
	}

	parser := ingredient.New(
		ingredient.WithPrepWords(fileConfig.Vocabulary.PrepWords...),
		ingredient.WithStopWords(fileConfig.Vocabulary.StopWords...),
		ingredient.WithDensities(fileConfig.Densities),
	)

	results := make([]ingredient.Parsed, 0, len(lines))
	for _, line := range lines {
		results = append(results, parser.Parse(line))
	}

	var output string
	if config.asJSON || fileConfig.Core.JSON {
		output, err = formatJSON(results)
		if err != nil {
			return err
		}
	} else {
		output = formatPretty(results)
	}

	return writeOutput(config.target, output)
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	config := &AppConfig{}

	rootCmd := &cobra.Command{
		Use:   appName + " [ingredient line]...",
		Short: "Parse recipe ingredient lines into structured records",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Parse recipe ingredient lines into quantity, unit, food and weight estimates. %s",
			color.New(color.FgBlue).Sprintf("(%s)", FullVersion),
		),
		Example: `  echo "2 1/2 cups of sugar" | ` + appName + `
  ` + appName + ` --json "1 (15 oz) can black beans"
  ` + appName + ` -i recipe.txt -t parsed.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(config, args)
		},
	}

	rootCmd.Flags().StringVarP(&config.inputFile, "input-file", "i", "", "Read input from file instead of stdin")
	rootCmd.Flags().StringVarP(&config.target, "target", "t", "", "Stores the output in the specified path")
	rootCmd.Flags().StringVar(&config.configPath, "config", defaultConfigPath(), "Path to the TOML config file")
	rootCmd.Flags().BoolVar(&config.asJSON, "json", false, "Emit results as a JSON array")
	rootCmd.Flags().BoolVarP(&config.showVersion, "version", "v", false, "Print version and exit")

	rootCmd.SetHelpTemplate(cmd.HelpTemplate)
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return cmd.ColorUsageFunc(c.OutOrStderr(), c)
	})

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Error executing command", "error", err)
		os.Exit(1)
	}
}
