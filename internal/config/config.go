package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// File settings
	AppointmentsFile string
	Editor           string

	// Display settings
	TimeFormat string
	DateFormat string
	FirstHour  int // first hour row shown in the day view

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string
	StartupView string

	// Behavior settings
	AutoRefresh   bool
	RefreshRate   time.Duration
	ConfirmDelete bool
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		AppointmentsFile: filepath.Join(home, ".termin", "appointments.json"),
		Editor:           getDefaultEditor(),

		TimeFormat: "15:04",
		DateFormat: "Jan 2, 2006",
		FirstHour:  8,

		Colors: map[string]string{
			"normal":   "default",
			"today":    "yellow",
			"selected": "reverse",
			"weekend":  "blue",
			"event":    "green",
			"header":   "bold",
		},

		KeyBindings: map[string]string{
			"quit":         "q",
			"help":         "?",
			"today":        "t",
			"refresh":      "r",
			"new":          "n",
			"edit":         "e",
			"delete":       "x",
			"next_period":  ">",
			"prev_period":  "<",
			"month_view":   "1",
			"week_view":    "2",
			"day_view":     "3",
			"move_here":    "m",
			"nudge_later":  "J",
			"nudge_sooner": "K",
		},

		StartupView:   "month",
		AutoRefresh:   true,
		RefreshRate:   30 * time.Second,
		ConfirmDelete: true,
	}
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Try multiple config file locations
	configPaths := []string{
		os.Getenv("TERMIN_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "termin", "terminrc"),
		filepath.Join(os.Getenv("HOME"), ".config", "termin", "terminrc"),
		filepath.Join(os.Getenv("HOME"), ".terminrc"),
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

// LoadConfigFile loads a specific config file over the defaults.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.loadFromFile(path); err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// Handle set commands: set variable value
	setRe := regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// Handle bind commands: bind key action
	bindRe := regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[2]] = matches[1]
		return nil
	}

	// Handle color commands: color element color_spec
	colorRe := regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "appointments_file":
		if strings.HasPrefix(value, "~/") {
			home, _ := os.UserHomeDir()
			value = filepath.Join(home, value[2:])
		}
		c.AppointmentsFile = value

	case "editor":
		c.Editor = value

	case "time_format":
		c.TimeFormat = value

	case "date_format":
		c.DateFormat = value

	case "first_hour":
		hour, err := strconv.Atoi(value)
		if err != nil || hour < 0 || hour > 23 {
			return fmt.Errorf("invalid first_hour: %s", value)
		}
		c.FirstHour = hour

	case "startup_view":
		switch value {
		case "month", "week", "day":
			c.StartupView = value
		default:
			return fmt.Errorf("invalid startup_view: %s", value)
		}

	case "auto_refresh":
		c.AutoRefresh = strings.ToLower(value) == "true" || value == "1"

	case "refresh_rate":
		rate, err := time.ParseDuration(value)
		if err != nil {
			// Try parsing as seconds
			if seconds, err2 := strconv.Atoi(value); err2 == nil {
				rate = time.Duration(seconds) * time.Second
			} else {
				return fmt.Errorf("invalid refresh_rate: %s", value)
			}
		}
		c.RefreshRate = rate

	case "confirm_delete":
		c.ConfirmDelete = strings.ToLower(value) == "true" || value == "1"

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

func getDefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return "vi"
}
