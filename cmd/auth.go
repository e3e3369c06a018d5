package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Adi-cmrec/lenslink/internal/api"
	"github.com/Adi-cmrec/lenslink/internal/logging"
)

const minPasswordLength = 6

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new photographer account",
	Long: `Register a new LensLink photographer account.

Prompts for name, email, and password unless given as flags:

  lenslink signup --name "Jane Doe" --email jane@example.com`,
	RunE: runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Long: `Authenticate with email and password.

The session token and identity are persisted under ~/.lenslink so later
commands stay authenticated across restarts.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE:  runWhoami,
}

func init() {
	signupCmd.Flags().String("name", "", "full name")
	signupCmd.Flags().String("email", "", "email address")
	loginCmd.Flags().String("email", "", "email address")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// prompt reads one line of input with a label.
func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(os.Stdin)

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")

	var err error
	if name == "" {
		if name, err = prompt(in, "Full name: "); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = prompt(in, "Email: "); err != nil {
			return err
		}
	}
	password, err := prompt(in, fmt.Sprintf("Password (min %d characters): ", minPasswordLength))
	if err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	client := getClient()
	if err := client.Auth.Signup(context.Background(), api.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "registered", "email": email})
	}
	fmt.Printf("%s Account created successfully! Please login.\n", colorGreen("✓"))
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(os.Stdin)

	email, _ := cmd.Flags().GetString("email")

	var err error
	if email == "" {
		if email, err = prompt(in, "Email: "); err != nil {
			return err
		}
	}
	password, err := prompt(in, "Password: ")
	if err != nil {
		return err
	}

	client := getClient()
	store, err := getSession()
	if err != nil {
		return err
	}

	result, err := client.Auth.Login(context.Background(), email, password)
	if err != nil {
		printError(err)
		return err
	}

	if err := store.Login(result.AccessToken, result.User); err != nil {
		return err
	}
	logging.L().Debug("session established", zap.String("email", result.User.Email))

	if jsonOut {
		return printJSON(map[string]string{"status": "logged_in", "user": result.User.Name})
	}
	fmt.Printf("%s Logged in as %s\n", colorGreen("✓"), result.User.Name)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := getSession()
	if err != nil {
		return err
	}
	if err := store.Logout(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "logged_out"})
	}
	fmt.Printf("%s Logged out\n", colorGreen("✓"))
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	store, err := requireSession()
	if err != nil {
		return err
	}
	user := store.CurrentUser()

	if jsonOut {
		return printJSON(user)
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}
