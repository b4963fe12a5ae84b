package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/presetapp/gigboard/internal/domain/model"
	gigsvc "github.com/presetapp/gigboard/internal/services/gigs"
)

type filterOutput struct {
	Items            []model.Gig `json:"items"`
	Page             int         `json:"page"`
	PageSize         int         `json:"page_size"`
	TotalItems       int         `json:"total_items"`
	TotalPages       int         `json:"total_pages"`
	HasActiveFilters bool        `json:"has_active_filters"`
}

func NewFilterCommand() *cobra.Command {
	var (
		input        string
		criteriaPath string
		page         int
		pageSize     int
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a JSON export of gigs",
		Long: `Apply gig search criteria to a JSON array of gigs and print one page.

Criteria can be read from a JSON file with --criteria. Flags given on the
command line override the file.`,
		Example: `  gigctl filter --input gigs.json --comp-type tfp --style editorial,fashion
  gigctl filter --input gigs.json --criteria saved-search.json --page 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gigs, err := readGigs(input)
			if err != nil {
				return err
			}

			base := gigsvc.DefaultCriteria()
			if criteriaPath != "" {
				if base, err = readCriteria(criteriaPath); err != nil {
					return err
				}
			}

			state := gigsvc.FilterStateFrom(base)
			if err := applyCriteriaFlags(cmd, state); err != nil {
				return err
			}

			criteria := state.Criteria()
			result := gigsvc.Paginate(gigsvc.FilterGigs(gigs, criteria), page, pageSize)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(filterOutput{
				Items:            result.Items,
				Page:             result.Page,
				PageSize:         result.PageSize,
				TotalItems:       result.TotalItems,
				TotalPages:       result.TotalPages,
				HasActiveFilters: state.HasActive(),
			})
		},
	}

	cmd.Flags().StringVar(&input, "input", "-", "gigs JSON file, - for stdin")
	cmd.Flags().StringVar(&criteriaPath, "criteria", "", "criteria JSON file")
	cmd.Flags().IntVar(&page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&pageSize, "page-size", gigsvc.DefaultPageSize, "gigs per page")

	cmd.Flags().String("search", "", "substring of title, description or location")
	cmd.Flags().String("comp-type", "", "compensation type (TFP, PAID, EXPENSES, OTHER, ALL)")
	cmd.Flags().String("purpose", "", "gig purpose (ALL for any)")
	cmd.Flags().String("usage-rights", "", "usage rights (ALL for any)")
	cmd.Flags().String("location", "", "substring of the gig location")
	cmd.Flags().String("start-date", "", "earliest start date, YYYY-MM-DD")
	cmd.Flags().String("end-date", "", "latest end date, YYYY-MM-DD")
	cmd.Flags().Int("max-applicants", 0, "upper bound on the gig's applicant limit")
	cmd.Flags().StringSlice("palette", nil, "palette colors, any match")
	cmd.Flags().StringSlice("style", nil, "style tags, any match")
	cmd.Flags().StringSlice("vibe", nil, "vibe tags, any match")
	cmd.Flags().StringSlice("role", nil, "looking-for role types, any match")
	cmd.Flags().StringSlice("specialization", nil, "owner specializations, any match")
	cmd.Flags().Int("min-experience", 0, "minimum owner years of experience")
	cmd.Flags().Int("max-experience", 0, "maximum owner years of experience")
	cmd.Flags().Float64("min-rate", 0, "minimum owner hourly rate")
	cmd.Flags().Float64("max-rate", 0, "maximum owner hourly rate")
	cmd.Flags().Bool("travel", false, "only owners available for travel")
	cmd.Flags().Bool("studio", false, "only owners with a studio")

	return cmd
}

// applyCriteriaFlags copies the flags the user actually passed onto state.
func applyCriteriaFlags(cmd *cobra.Command, state *gigsvc.FilterState) error {
	flags := cmd.Flags()

	stringSetters := map[string]func(string){
		"search":       state.SetSearchTerm,
		"comp-type":    func(v string) { state.SetCompType(strings.ToUpper(v)) },
		"purpose":      func(v string) { state.SetPurpose(strings.ToUpper(v)) },
		"usage-rights": func(v string) { state.SetUsageRights(strings.ToUpper(v)) },
		"location":     state.SetLocation,
		"start-date":   state.SetStartDate,
		"end-date":     state.SetEndDate,
	}
	for name, set := range stringSetters {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		set(strings.TrimSpace(v))
	}

	sliceSetters := map[string]func([]string){
		"palette":        state.SetPalette,
		"style":          state.SetStyleTags,
		"vibe":           state.SetVibeTags,
		"role":           state.SetRoleTypes,
		"specialization": state.SetSpecializations,
	}
	for name, set := range sliceSetters {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetStringSlice(name)
		if err != nil {
			return err
		}
		set(v)
	}

	intSetters := map[string]func(*int){
		"max-applicants": state.SetMaxApplicants,
		"min-experience": state.SetMinExperience,
		"max-experience": state.SetMaxExperience,
	}
	for name, set := range intSetters {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return err
		}
		set(&v)
	}

	floatSetters := map[string]func(*float64){
		"min-rate": state.SetMinRate,
		"max-rate": state.SetMaxRate,
	}
	for name, set := range floatSetters {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return err
		}
		set(&v)
	}

	if flags.Changed("travel") {
		v, _ := flags.GetBool("travel")
		state.SetTravelOnly(v)
	}
	if flags.Changed("studio") {
		v, _ := flags.GetBool("studio")
		state.SetStudioOnly(v)
	}

	return nil
}

func readGigs(path string) ([]model.Gig, error) {
	var gigs []model.Gig
	if err := decodeJSONFile(path, &gigs); err != nil {
		return nil, fmt.Errorf("read gigs: %w", err)
	}
	return gigs, nil
}

func readCriteria(path string) (gigsvc.Criteria, error) {
	criteria := gigsvc.DefaultCriteria()
	if err := decodeJSONFile(path, &criteria); err != nil {
		return gigsvc.Criteria{}, fmt.Errorf("read criteria: %w", err)
	}
	return criteria, nil
}

func decodeJSONFile(path string, target any) error {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
