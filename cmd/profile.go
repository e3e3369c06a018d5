package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Adi-cmrec/lenslink/internal/api"
	"github.com/Adi-cmrec/lenslink/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your photographer profile",
	Long: `Manage your own photographer profile (requires login).

Examples:
  lenslink profile show
  lenslink profile edit
  lenslink profile upload shot1.jpg shot2.jpg`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runProfileShow,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Create or edit your profile interactively",
	RunE:  runProfileEdit,
}

var profileUploadCmd = &cobra.Command{
	Use:   "upload <files...>",
	Short: "Upload portfolio photos (max 5 total)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProfileUpload,
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileUploadCmd)

	rootCmd.AddCommand(profileCmd)
}

// newEditor wires a profile editor to the current session and API client.
func newEditor() (*profile.Editor, *api.Client, error) {
	store, err := requireSession()
	if err != nil {
		return nil, nil, err
	}
	client := getClient()
	return profile.NewEditor(client.Profile, store), client, nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	editor, client, err := newEditor()
	if err != nil {
		return err
	}

	if err := editor.Activate(context.Background()); err != nil {
		printError(err)
		return err
	}

	p := editor.Profile()
	if p == nil {
		fmt.Println("No profile yet. Run 'lenslink profile edit' to create one.")
		return nil
	}

	if jsonOut {
		return printJSON(p)
	}

	renderProfile(p, client)
	return nil
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	editor, client, err := newEditor()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := editor.Activate(ctx); err != nil {
		printError(err)
		return err
	}

	creating := editor.Profile() == nil
	if creating {
		fmt.Println("Create your profile")
	} else {
		fmt.Println("Edit your profile (press Enter to keep the current value)")
		editor.BeginEdit()
	}

	in := bufio.NewReader(os.Stdin)
	if err := fillDraft(in, editor.Draft()); err != nil {
		return err
	}

	if err := editor.Save(ctx); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(editor.Profile())
	}
	if creating {
		fmt.Printf("%s Profile created!\n\n", colorGreen("✓"))
	} else {
		fmt.Printf("%s Profile updated!\n\n", colorGreen("✓"))
	}
	renderProfile(editor.Profile(), client)
	return nil
}

func runProfileUpload(cmd *cobra.Command, args []string) error {
	editor, client, err := newEditor()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := editor.Activate(ctx); err != nil {
		printError(err)
		return err
	}

	if err := editor.SelectFiles(args); err != nil {
		printError(err)
		return err
	}

	if err := editor.UploadStaged(ctx); err != nil {
		printError(err)
		return err
	}

	p := editor.Profile()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"status":      "uploaded",
			"work_photos": p.WorkPhotos,
		})
	}
	fmt.Printf("%s Photos uploaded! (%d/%d)\n", colorGreen("✓"), len(p.WorkPhotos), api.MaxWorkPhotos)
	for _, photo := range p.WorkPhotos {
		fmt.Printf("  %s\n", client.ResolvePhotoURL(photo))
	}
	return nil
}

// fillDraft prompts for each draft field. Blank input keeps the seeded value.
func fillDraft(in *bufio.Reader, d *profile.Draft) error {
	fields := []struct {
		label string
		value *string
	}{
		{"Photography type", &d.PhotographyType},
		{"City", &d.City},
		{"Years of experience", &d.ExperienceYears},
		{"Skills (comma-separated)", &d.Skills},
		{"Contact number", &d.ContactNumber},
	}

	for _, f := range fields {
		label := f.label
		if *f.value != "" {
			label = fmt.Sprintf("%s [%s]", label, *f.value)
		}
		input, err := prompt(in, label+": ")
		if err != nil {
			return err
		}
		if input != "" {
			*f.value = input
		}
	}

	avail := "y"
	if !d.Available {
		avail = "n"
	}
	input, err := prompt(in, fmt.Sprintf("Available for work (y/n) [%s]: ", avail))
	if err != nil {
		return err
	}
	switch strings.ToLower(input) {
	case "y", "yes":
		d.Available = true
	case "n", "no":
		d.Available = false
	}
	return nil
}

// renderProfile prints the read-only profile view.
func renderProfile(p *api.Photographer, client *api.Client) {
	fmt.Printf("%s\n%s\n\n", p.Name, p.Email)
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
		fmt.Printf("  %s\n", client.ResolvePhotoURL(photo))
	}
}
