// ABOUTME: Operator CLI for the muse-studio persistent store
// ABOUTME: Manages accounts, broadcasts, and notifications over the local database

package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/2389/muse-studio/internal/config"
	"github.com/2389/muse-studio/internal/kv"
	"github.com/2389/muse-studio/internal/session"
	"github.com/2389/muse-studio/internal/store"
)

const banner = `
                                    _             _ _
 _ __ ___  _   _ ___  ___     ___ _| |_ _   _  __| (_) ___
| '_ ' _ \| | | / __|/ _ \___/ __|_  __| | | |/ _' | |/ _ \
| | | | | | |_| \__ \  __/___\__ \ | |_| |_| | (_| | | (_) |
|_| |_| |_|\__,_|___/\___|   |___/  \__|\__,_|\__,_|_|\___/
`

// getConfigPath returns the path to the studio config file.
// Priority: MUSE_CONFIG env var > XDG_CONFIG_HOME/muse/studio.yaml > ~/.config/muse/studio.yaml
func getConfigPath() string {
	if envPath := os.Getenv("MUSE_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "studio.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "muse", "studio.yaml")
}

// getDataPath returns the path to the muse data directory.
// Priority: XDG_DATA_HOME/muse > ~/.local/share/muse
func getDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "muse")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = runInit(ctx)
	case "login":
		err = cmdLogin(ctx, args)
	case "whoami":
		err = cmdWhoami(ctx)
	case "users":
		err = cmdUsers(ctx, args)
	case "about":
		err = cmdAbout(ctx, args)
	case "broadcast":
		err = cmdBroadcast(ctx, args)
	case "logs":
		err = cmdLogs(ctx)
	case "ideas":
		err = cmdIdeas(ctx, args)
	case "news":
		err = cmdNews(ctx)
	case "notifications":
		err = cmdNotifications(ctx, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: muse-admin <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  init                    Create the config file and bootstrap the database")
	fmt.Println("  login [access-code]     Log in and store a session token")
	fmt.Println("  whoami                  Show the logged-in account and today's usage")
	fmt.Println("  users                   List all user accounts")
	fmt.Println("  users add <name> <code> Create a verified user account")
	fmt.Println("  users delete <id>       Delete a user and all their content")
	fmt.Println("  about <id> [text]       Show or update a user's about info")
	fmt.Println("  broadcast [message]     Show the latest broadcast, or send a new one")
	fmt.Println("  logs                    Show the activity log (marks it viewed)")
	fmt.Println("  ideas                   List pending post ideas")
	fmt.Println("  ideas delete <id>       Consume a post idea")
	fmt.Println("  news                    Show today's cached algorithm-news article")
	fmt.Println("  notifications           Show pending admin notification counts")
	fmt.Println("  notifications clear <section>  Mark a section as viewed (ideas, logs)")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  MUSE_CONFIG             Config file path (default: ~/.config/muse/studio.yaml)")
	fmt.Println("  MUSE_TOKEN              Session token (overrides the stored token file)")
	fmt.Println()
	yellow.Println("Examples:")
	fmt.Println("  muse-admin init")
	fmt.Println("  muse-admin login A12")
	fmt.Println("  muse-admin users add 'Sara Creator' S1")
	fmt.Println("  muse-admin broadcast 'New templates are live!'")
	fmt.Println()
}

// openStore loads the config, opens the persistence medium, and runs the
// startup integrity pass.
func openStore(ctx context.Context) (*config.Config, *store.Store, func(), error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	setupLogger(cfg.Logging)

	medium, err := kv.NewSQLite(cfg.Storage.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening storage: %w", err)
	}
	closer := func() { _ = medium.Close() }

	st := store.New(medium)
	if err := st.Initialize(ctx); err != nil {
		closer()
		return nil, nil, nil, fmt.Errorf("initializing store: %w", err)
	}
	return cfg, st, closer, nil
}

func setupLogger(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = &colorHandler{level: level}
	}

	slog.SetDefault(slog.New(handler))
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	// Format timestamp
	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	// Colorize level
	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	// Print message
	buf.WriteString(r.Message)

	// Print handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	// Print record attrs
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Fprint(os.Stderr, buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

// runInit creates the config file interactively and bootstraps the
// database so the reserved accounts exist.
func runInit(ctx context.Context) error {
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	outputFile := getConfigPath()
	if _, err := os.Stat(outputFile); err == nil {
		return fmt.Errorf("config already exists at %s", outputFile)
	}

	dbPath := prompt(reader, "Database path", filepath.Join(getDataPath(), "studio.db"))
	secret := prompt(reader, "Session secret (empty to generate)", "")
	if secret == "" {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("generating session secret: %w", err)
		}
		secret = hex.EncodeToString(raw)
	}
	ttl := prompt(reader, "Session lifetime", "720h")
	model := prompt(reader, "Text model", "gemini-2.5-flash")
	imageModel := prompt(reader, "Image model", "gemini-2.0-flash-image")

	var cfg strings.Builder
	cfg.WriteString("storage:\n")
	cfg.WriteString(fmt.Sprintf("  path: %q\n", dbPath))
	cfg.WriteString("\n")
	cfg.WriteString("session:\n")
	cfg.WriteString(fmt.Sprintf("  secret: %q\n", secret))
	cfg.WriteString(fmt.Sprintf("  ttl: %q\n", ttl))
	cfg.WriteString("\n")
	cfg.WriteString("ai:\n")
	cfg.WriteString(fmt.Sprintf("  model: %q\n", model))
	cfg.WriteString(fmt.Sprintf("  image_model: %q\n", imageModel))
	cfg.WriteString("\n")
	cfg.WriteString("logging:\n")
	cfg.WriteString("  level: \"info\"\n")
	cfg.WriteString("  format: \"text\"\n")

	// Ensure config directory exists
	configDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write config file
	if err := os.WriteFile(outputFile, []byte(cfg.String()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// Open the store once so the reserved accounts are created
	medium, err := kv.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer medium.Close()

	if err := store.New(medium).Initialize(ctx); err != nil {
		return fmt.Errorf("bootstrapping database: %w", err)
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Printf("Database: %s\n", dbPath)
	fmt.Println("\nTo log in as the administrator:")
	fmt.Println("  muse-admin login A12")

	return nil
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		// On EOF or error, return default
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}

// tokenPath returns the location of the stored session token file.
func tokenPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "token"
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "muse", "token")
}

// getToken returns the session token from MUSE_TOKEN or the token file.
func getToken() string {
	if token := os.Getenv("MUSE_TOKEN"); token != "" {
		return token
	}

	data, err := os.ReadFile(tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// currentUser resolves the stored session token to a user, rolling the
// account's quota window the way a session resume does.
func currentUser(ctx context.Context, cfg *config.Config, st *store.Store) (*store.User, error) {
	token := getToken()
	if token == "" {
		return nil, fmt.Errorf("not logged in (run: muse-admin login <access-code>)")
	}

	mgr := session.NewManager([]byte(cfg.Session.Secret), cfg.Session.TTL)
	userID, err := mgr.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("session invalid, log in again: %w", err)
	}

	user, err := st.VerifyAccessCode(ctx, strconv.FormatInt(userID, 10), true)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("session account no longer exists")
	}
	return user, nil
}

// requireAdmin resolves the session and rejects non-admin accounts.
func requireAdmin(ctx context.Context, cfg *config.Config, st *store.Store) (*store.User, error) {
	user, err := currentUser(ctx, cfg, st)
	if err != nil {
		return nil, err
	}
	if !store.IsAdminUser(user.UserID) {
		return nil, fmt.Errorf("admin access required")
	}
	return user, nil
}

func cmdLogin(ctx context.Context, args []string) error {
	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		code = prompt(bufio.NewReader(os.Stdin), "Access code", "")
	}
	if code == "" {
		return fmt.Errorf("access code is required")
	}

	user, err := st.VerifyAccessCode(ctx, code, false)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("invalid access code")
	}

	mgr := session.NewManager([]byte(cfg.Session.Secret), cfg.Session.TTL)
	token, err := mgr.Issue(user.UserID)
	if err != nil {
		return fmt.Errorf("issuing session token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(tokenPath()), 0755); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(tokenPath(), []byte(token), 0600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Logged in as %s", user.FullName)
	if store.IsAdminUser(user.UserID) {
		color.New(color.FgYellow).Print(" [admin]")
	}
	fmt.Println()

	return nil
}

func cmdWhoami(ctx context.Context) error {
	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	user, err := currentUser(ctx, cfg, st)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Println("  Account")
	cyan.Println("  -------")
	fmt.Printf("  User ID:     %d\n", user.UserID)
	fmt.Printf("  Full Name:   %s\n", user.FullName)
	fmt.Printf("  Access Code: %s\n", user.AccessCode)
	if store.IsAdminUser(user.UserID) {
		color.New(color.FgYellow).Println("  Role:        admin")
	}

	if user.AboutInfo != "" {
		fmt.Printf("  About:       %s\n", user.AboutInfo)
	}

	fmt.Println()
	cyan.Println("  Today's Usage")
	cyan.Println("  -------------")
	fmt.Printf("  Stories:     %d/%d\n", user.StoryRequests, store.StoryDailyLimit)
	fmt.Printf("  Images:      %d/%d\n", user.ImageRequests, store.ImageDailyLimit)
	fmt.Printf("  Chat:        %d/%d\n", user.ChatMessages, store.ChatDailyLimit)
	fmt.Println()

	return nil
}

func cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return cmdUsersList(ctx)
	}

	switch args[0] {
	case "add":
		return cmdUsersAdd(ctx, args[1:])
	case "delete":
		return cmdUsersDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown users subcommand: %s", args[0])
	}
}

func cmdUsersList(ctx context.Context) error {
	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	users, err := st.GetAllUsers(ctx)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No user accounts.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCODE\tVERIFIED\tABOUT")
	for _, u := range users {
		about := u.AboutInfo
		if len(about) > 40 {
			about = about[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", u.UserID, u.FullName, u.AccessCode, u.IsVerified, about)
	}
	return w.Flush()
}

func cmdUsersAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: muse-admin users add <name> <access-code>")
	}

	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	result, err := st.AddUser(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}

	color.Green("%s\n", result.Message)
	return nil
}

func cmdUsersDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: muse-admin users delete <user-id>")
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user ID %q", args[0])
	}

	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	user, err := st.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no user with ID %d", userID)
	}

	if err := st.DeleteUser(ctx, userID); err != nil {
		return err
	}

	color.Green("Deleted %s and all their content\n", user.FullName)
	return nil
}

func cmdAbout(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: muse-admin about <user-id> [text]")
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user ID %q", args[0])
	}

	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	user, err := st.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no user with ID %d", userID)
	}

	if len(args) == 1 {
		if user.AboutInfo == "" {
			fmt.Printf("%s has no about info.\n", user.FullName)
		} else {
			fmt.Println(user.AboutInfo)
		}
		return nil
	}

	if err := st.UpdateUserAbout(ctx, userID, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	color.Green("Updated about info for %s\n", user.FullName)
	return nil
}

func cmdBroadcast(ctx context.Context, args []string) error {
	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if len(args) == 0 {
		latest, err := st.LatestBroadcast(ctx)
		if err != nil {
			return err
		}
		if latest == nil {
			fmt.Println("No broadcast has been sent.")
			return nil
		}
		color.New(color.FgCyan).Printf("[%s] ", latest.Timestamp.Format("2006-01-02 15:04"))
		fmt.Println(latest.Message)
		return nil
	}

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	if err := st.AddBroadcast(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	color.Green("Broadcast sent\n")
	return nil
}

func cmdLogs(ctx context.Context) error {
	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	logs, err := st.ActivityLogs(ctx)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Println("No activity recorded.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tUSER\tACTION")
		for _, entry := range logs {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				entry.Timestamp.Format("2006-01-02 15:04"), entry.UserFullName, entry.Action)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	// Viewing the log marks it as read
	return st.ClearAdminNotifications(ctx, store.SectionLogs)
}

func cmdIdeas(ctx context.Context, args []string) error {
	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "delete" {
		if len(args) < 2 {
			return fmt.Errorf("usage: muse-admin ideas delete <idea-id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea ID %q", args[1])
		}
		if err := st.DeleteIdea(ctx, id); err != nil {
			return err
		}
		color.Green("Idea %d consumed\n", id)
		return nil
	}
	if len(args) > 0 && args[0] != "list" {
		return fmt.Errorf("unknown ideas subcommand: %s", args[0])
	}

	ideas, err := st.AllIdeas(ctx)
	if err != nil {
		return err
	}
	if len(ideas) == 0 {
		fmt.Println("No pending ideas.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tIDEA")
	for _, idea := range ideas {
		fmt.Fprintf(w, "%d\t%d\t%s\n", idea.ID, idea.UserID, idea.IdeaText)
	}
	return w.Flush()
}

func cmdNews(ctx context.Context) error {
	_, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	article, err := st.CachedArticle(ctx)
	if err != nil {
		return err
	}
	if article == nil {
		fmt.Println("No article cached for today.")
		return nil
	}

	color.New(color.FgCyan).Printf("Algorithm news for %s\n\n", article.Date)
	fmt.Println(article.Article)
	if len(article.Sources) > 0 {
		fmt.Println()
		color.New(color.FgYellow).Println("Sources:")
		for _, src := range article.Sources {
			fmt.Printf("  %s — %s\n", src.Title, src.URL)
		}
	}
	return nil
}

func cmdNotifications(ctx context.Context, args []string) error {
	cfg, st, closer, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := requireAdmin(ctx, cfg, st); err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "clear" {
		if len(args) < 2 {
			return fmt.Errorf("usage: muse-admin notifications clear <section>")
		}
		if err := st.ClearAdminNotifications(ctx, args[1]); err != nil {
			return err
		}
		color.Green("Cleared %s notifications\n", args[1])
		return nil
	}

	counts, err := st.AdminNotificationCounts(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Pending ideas:   %d\n", counts.Ideas)
	fmt.Printf("Unviewed logs:   %d\n", counts.Logs)
	return nil
}
