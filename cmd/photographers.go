package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var photographersCmd = &cobra.Command{
	Use:   "photographers",
	Short: "Browse the photographer directory",
	Long: `Browse and filter public photographer listings.

Examples:
  lenslink photographers list
  lenslink photographers list --city paris --type wedding
  lenslink photographers get 665f1c2e9b3a`,
}

var photographersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List photographers, optionally filtered",
	RunE:  runPhotographersList,
}

var photographersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one photographer in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runPhotographersGet,
}

func init() {
	photographersListCmd.Flags().String("city", "", "filter by city (substring, case-insensitive)")
	photographersListCmd.Flags().String("type", "", "filter by photography type (substring, case-insensitive)")

	photographersCmd.AddCommand(photographersListCmd)
	photographersCmd.AddCommand(photographersGetCmd)

	rootCmd.AddCommand(photographersCmd)
}

func runPhotographersList(cmd *cobra.Command, args []string) error {
	client := getClient()

	city, _ := cmd.Flags().GetString("city")
	ptype, _ := cmd.Flags().GetString("type")

	entries, err := client.Photographers.ListFiltered(context.Background(), city, ptype)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"photographers": entries,
			"count":         len(entries),
		})
	}

	if len(entries) == 0 {
		fmt.Println("No photographers found")
		return nil
	}

	fmt.Printf("Showing %d photographer(s)\n\n", len(entries))
	w := newTable()
	printTableHeader(w, "ID", "NAME", "TYPE", "CITY", "EXP", "STATUS", "SKILLS")
	for _, p := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dy\t%s\t%s\n",
			truncate(p.ID, 12),
			p.Name,
			p.PhotographyType,
			p.City,
			p.ExperienceYears,
			formatAvailability(p.Available),
			formatSkills(p.Skills),
		)
	}
	return w.Flush()
}

func runPhotographersGet(cmd *cobra.Command, args []string) error {
	client := getClient()

	entry, err := client.Photographers.Get(context.Background(), args[0])
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(entry)
	}

	fmt.Printf("%s\n%s\n\n", entry.Name, entry.Email)
	fmt.Printf("Photography Type: %s\n", entry.PhotographyType)
	fmt.Printf("Location:         %s\n", entry.City)
	fmt.Printf("Experience:       %d years\n", entry.ExperienceYears)
	fmt.Printf("Status:           %s\n", formatAvailability(entry.Available))
	fmt.Printf("Contact:          %s\n", entry.ContactNumber)
	if len(entry.Skills) > 0 {
		fmt.Printf("Skills:           %s\n", formatSkills(entry.Skills))
	}
	if len(entry.WorkPhotos) > 0 {
		fmt.Println("\nPortfolio:")
		for _, photo := range entry.WorkPhotos {
			fmt.Printf("  %s\n", client.ResolvePhotoURL(photo))
		}
	}
	return nil
}
