package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Adi-cmrec/lenslink/internal/api"
	"github.com/Adi-cmrec/lenslink/internal/app"
	"github.com/Adi-cmrec/lenslink/internal/listing"
	"github.com/Adi-cmrec/lenslink/internal/logging"
	"github.com/Adi-cmrec/lenslink/internal/profile"
	"github.com/Adi-cmrec/lenslink/internal/session"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start an interactive browsing session",
	Long: `Start an interactive session: browse and filter listings, view
photographer details, log in, and manage your profile, all without leaving
the prompt.

Type 'help' inside the session for the commands available on each screen.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// browser drives the navigation controller from a line-based prompt. All
// work happens on this single loop; network calls run to completion before
// the next prompt.
type browser struct {
	in     *bufio.Reader
	client *api.Client
	store  *session.Store
	ctrl   *app.Controller

	engine *listing.Engine
	editor *profile.Editor
}

func runBrowse(cmd *cobra.Command, args []string) error {
	store, err := getSession()
	if err != nil {
		return err
	}

	client := getClient()
	b := &browser{
		in:     bufio.NewReader(os.Stdin),
		client: client,
		store:  store,
		ctrl:   app.NewController(store),
	}

	fmt.Println("LensLink — Connect with Professional Photographers")
	if store.IsAuthenticated() {
		fmt.Printf("Hi, %s\n", store.CurrentUser().Name)
	}
	fmt.Println()

	return b.loop()
}

// loop renders the active view and handles its commands until quit.
func (b *browser) loop() error {
	for {
		var err error
		switch b.ctrl.View() {
		case app.ViewListing:
			err = b.listingScreen()
		case app.ViewLogin:
			err = b.loginScreen()
		case app.ViewSignup:
			err = b.signupScreen()
		case app.ViewProfile:
			err = b.profileScreen()
		case app.ViewDetail:
			err = b.detailScreen()
		}
		if err == errQuit || err == io.EOF {
			fmt.Println("Bye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errQuit = fmt.Errorf("quit")

// readCommand reads one command line and splits off the first word.
func (b *browser) readCommand() (string, string, error) {
	fmt.Print("> ")
	line, err := b.in.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	line = strings.TrimSpace(line)
	word, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(word), strings.TrimSpace(rest), nil
}

// listingScreen fetches fresh entries on activation, then filters and
// navigates until the view changes.
func (b *browser) listingScreen() error {
	// Entries are fetched fresh on every activation and held only for the
	// lifetime of this view.
	b.engine = listing.NewEngine(b.client.Photographers)
	fmt.Println("Loading photographers...")
	if err := b.engine.Load(context.Background()); err != nil {
		printError(err)
	}
	b.renderListing()

	for b.ctrl.View() == app.ViewListing {
		cmd, arg, err := b.readCommand()
		if err != nil {
			return err
		}

		switch cmd {
		case "":
		case "city":
			b.engine.SetCityQuery(arg)
			b.renderListing()
		case "type":
			b.engine.SetTypeQuery(arg)
			b.renderListing()
		case "clear":
			b.engine.Clear()
			b.renderListing()
		case "reload":
			if err := b.engine.Load(context.Background()); err != nil {
				printError(err)
			}
			b.renderListing()
		case "view":
			b.selectEntry(arg)
		case "login":
			b.ctrl.Goto(app.ViewLogin)
		case "signup":
			b.ctrl.Goto(app.ViewSignup)
		case "profile":
			if !b.ctrl.Goto(app.ViewProfile) {
				fmt.Println("Log in first to manage your profile.")
			}
		case "logout":
			b.logout()
		case "help":
			fmt.Println("Commands: city <q> | type <q> | clear | reload | view <n|id> | login | signup | profile | logout | quit")
		case "quit", "exit":
			return errQuit
		default:
			fmt.Printf("Unknown command %q (try 'help')\n", cmd)
		}
	}
	return nil
}

// selectEntry resolves a row number or raw id against the visible set.
func (b *browser) selectEntry(arg string) {
	if arg == "" {
		fmt.Println("Usage: view <number|id>")
		return
	}
	visible := b.engine.Visible()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(visible) {
			fmt.Printf("No entry #%d (showing %d)\n", n, len(visible))
			return
		}
		b.ctrl.Select(visible[n-1].ID)
		return
	}
	b.ctrl.Select(arg)
}

func (b *browser) renderListing() {
	visible := b.engine.Visible()

	fmt.Println("\nDiscover Photographers")
	if q := b.engine.CityQuery(); q != "" {
		fmt.Printf("  city filter: %q\n", q)
	}
	if q := b.engine.TypeQuery(); q != "" {
		fmt.Printf("  type filter: %q\n", q)
	}

	if len(visible) == 0 {
		fmt.Println("\nNo photographers found. Try adjusting your filters or check back later.")
		return
	}

	fmt.Printf("\nShowing %d photographer(s)\n", len(visible))
	w := newTable()
	printTableHeader(w, "#", "NAME", "TYPE", "CITY", "EXP", "STATUS", "SKILLS")
	for i, p := range visible {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%dy\t%s\t%s\n",
			i+1,
			p.Name,
			p.PhotographyType,
			p.City,
			p.ExperienceYears,
			formatAvailability(p.Available),
			formatSkills(p.Skills),
		)
	}
	_ = w.Flush()
}

func (b *browser) detailScreen() error {
	id := b.ctrl.DetailID()
	entry, err := b.client.Photographers.Get(context.Background(), id)
	if err != nil {
		printError(err)
		b.ctrl.Back()
		return nil
	}

	fmt.Printf("\n%s\n%s\n\n", entry.Name, entry.Email)
	fmt.Printf("Photography Type: %s\n", entry.PhotographyType)
	fmt.Printf("Location:         %s\n", entry.City)
	fmt.Printf("Experience:       %d years\n", entry.ExperienceYears)
	fmt.Printf("Status:           %s\n", formatAvailability(entry.Available))
	fmt.Printf("Contact:          %s | %s\n", entry.ContactNumber, entry.Email)
	if len(entry.Skills) > 0 {
		fmt.Printf("Skills:           %s\n", strings.Join(entry.Skills, ", "))
	}
	if len(entry.WorkPhotos) > 0 {
		fmt.Println("\nPortfolio:")
		for _, photo := range entry.WorkPhotos {
			fmt.Printf("  %s\n", b.client.ResolvePhotoURL(photo))
		}
	}
	fmt.Println("\n(back | quit)")

	for b.ctrl.View() == app.ViewDetail {
		cmd, _, err := b.readCommand()
		if err != nil {
			return err
		}
		switch cmd {
		case "", "back":
			b.ctrl.Back()
		case "quit", "exit":
			return errQuit
		default:
			fmt.Println("Commands: back | quit")
		}
	}
	return nil
}

func (b *browser) loginScreen() error {
	fmt.Println("\nLogin to LensLink (blank email to go back)")

	email, err := prompt(b.in, "Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		b.ctrl.Goto(app.ViewListing)
		return nil
	}
	password, err := prompt(b.in, "Password: ")
	if err != nil {
		return err
	}

	fmt.Println("Logging in...")
	result, err := b.client.Auth.Login(context.Background(), email, password)
	if err != nil {
		printError(err)
		return nil
	}

	if err := b.store.Login(result.AccessToken, result.User); err != nil {
		return err
	}
	logging.L().Debug("session established", zap.String("email", result.User.Email))
	fmt.Printf("%s Logged in as %s\n", colorGreen("✓"), result.User.Name)
	b.ctrl.LoggedIn()
	return nil
}

func (b *browser) signupScreen() error {
	fmt.Println("\nJoin LensLink (blank name to go back)")

	name, err := prompt(b.in, "Full name: ")
	if err != nil {
		return err
	}
	if name == "" {
		b.ctrl.Goto(app.ViewListing)
		return nil
	}
	email, err := prompt(b.in, "Email: ")
	if err != nil {
		return err
	}
	password, err := prompt(b.in, fmt.Sprintf("Password (min %d characters): ", minPasswordLength))
	if err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		fmt.Printf("Password must be at least %d characters\n", minPasswordLength)
		return nil
	}

	fmt.Println("Creating account...")
	err = b.client.Auth.Signup(context.Background(), api.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		printError(err)
		return nil
	}

	fmt.Printf("%s Account created successfully! Please login.\n", colorGreen("✓"))
	b.ctrl.SignedUp()
	return nil
}

func (b *browser) profileScreen() error {
	// A fresh editor per activation: the draft is created here and
	// discarded on navigation away.
	b.editor = profile.NewEditor(b.client.Profile, b.store)
	fmt.Println("\nLoading profile...")
	if err := b.editor.Activate(context.Background()); err != nil {
		printError(err)
		b.ctrl.Goto(app.ViewListing)
		return nil
	}

	for b.ctrl.View() == app.ViewProfile {
		if b.editor.Mode() == profile.Editing {
			if err := b.profileEdit(); err != nil {
				return err
			}
			continue
		}

		b.renderOwnProfile()
		cmd, arg, err := b.readCommand()
		if err != nil {
			return err
		}
		switch cmd {
		case "":
		case "edit":
			b.editor.BeginEdit()
		case "photos":
			if arg == "" {
				fmt.Println("Usage: photos <file> [file...]")
				continue
			}
			if err := b.editor.SelectFiles(strings.Fields(arg)); err != nil {
				printError(err)
				continue
			}
			fmt.Printf("Staged %d file(s). Run 'upload' to submit.\n", len(b.editor.Staged()))
		case "upload":
			if err := b.editor.UploadStaged(context.Background()); err != nil {
				printError(err)
				continue
			}
			fmt.Printf("%s Photos uploaded!\n", colorGreen("✓"))
		case "back":
			b.ctrl.Goto(app.ViewListing)
		case "logout":
			b.logout()
		case "help":
			fmt.Println("Commands: edit | photos <files...> | upload | back | logout | quit")
		case "quit", "exit":
			return errQuit
		default:
			fmt.Printf("Unknown command %q (try 'help')\n", cmd)
		}
	}
	return nil
}

// profileEdit runs the field prompts and save for the editing mode,
// including the first-time create path.
func (b *browser) profileEdit() error {
	creating := b.editor.Profile() == nil
	if creating {
		fmt.Println("\nCreate Your Profile")
	} else {
		fmt.Println("\nEdit Profile (press Enter to keep the current value)")
	}

	if err := fillDraft(b.in, b.editor.Draft()); err != nil {
		return err
	}

	if err := b.editor.Save(context.Background()); err != nil {
		printError(err)
		// Still in editing; let the user retry or leave.
		input, perr := prompt(b.in, "Retry? (y/N): ")
		if perr != nil {
			return perr
		}
		if strings.ToLower(input) != "y" {
			if creating {
				b.ctrl.Goto(app.ViewListing)
			} else {
				b.editor.CancelEdit()
			}
		}
		return nil
	}

	if creating {
		fmt.Printf("%s Profile created!\n", colorGreen("✓"))
	} else {
		fmt.Printf("%s Profile updated!\n", colorGreen("✓"))
	}
	return nil
}

func (b *browser) renderOwnProfile() {
	p := b.editor.Profile()
	user := b.store.CurrentUser()

	fmt.Printf("\nMy Profile — %s <%s>\n\n", user.Name, user.Email)
	fmt.Printf("Photography Type: %s\n", p.PhotographyType)
	fmt.Printf("City:             %s\n", p.City)
	fmt.Printf("Experience:       %d years\n", p.ExperienceYears)
	fmt.Printf("Contact:          %s\n", p.ContactNumber)
	fmt.Printf("Status:           %s\n", formatAvailability(p.Available))
	if len(p.Skills) > 0 {
		fmt.Printf("Skills:           %s\n", strings.Join(p.Skills, ", "))
	}
	fmt.Printf("\nWork Photos (%d/%d):\n", len(p.WorkPhotos), api.MaxWorkPhotos)
	for _, photo := range p.WorkPhotos {
		fmt.Printf("  %s\n", b.client.ResolvePhotoURL(photo))
	}
	if staged := b.editor.Staged(); len(staged) > 0 {
		fmt.Printf("%s %s\n", colorYellow("Staged for upload:"), strings.Join(staged, ", "))
	}
	fmt.Println()
}

func (b *browser) logout() {
	if err := b.store.Logout(); err != nil {
		printError(err)
		return
	}
	fmt.Println("Logged out.")
	b.ctrl.LoggedOut()
}
