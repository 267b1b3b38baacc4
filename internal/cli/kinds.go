package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/spf13/cobra"
)

var categories = map[string]func(kind.Kind) bool{
	"definition":   kind.Kind.IsDefinition,
	"usage":        kind.Kind.IsUsage,
	"relationship": kind.Kind.IsRelationship,
	"feature":      kind.Kind.IsFeature,
	"classifier":   kind.Kind.IsClassifier,
}

func categoryNames() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newKindsCommand() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the element kinds of the taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := func(kind.Kind) bool { return true }
			if category != "" {
				f, ok := categories[strings.ToLower(category)]
				if !ok {
					return &ExitError{Code: 2, Message: fmt.Sprintf("invalid category %q: must be one of %s", category, strings.Join(categoryNames(), ", "))}
				}
				filter = f
			}
			for _, k := range kind.All() {
				if filter(k) {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list kinds of this category: "+strings.Join(categoryNames(), ", ")+".")
	return cmd
}

func newKindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kind NAME",
		Short: "Describe one element kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kind.Parse(args[0])
			if err != nil {
				return usageError(err)
			}
			describeKind(cmd, k)
			return nil
		},
	}
}

func describeKind(cmd *cobra.Command, k kind.Kind) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Kind: %s\n", k)
	fmt.Fprintf(w, "Direct supertypes: %s\n", joinKinds(k.DirectSupertypes()))
	fmt.Fprintf(w, "All supertypes: %s\n", joinKinds(k.Supertypes()))

	var cats []string
	for _, name := range categoryNames() {
		if categories[name](k) {
			cats = append(cats, name)
		}
	}
	if len(cats) > 0 {
		fmt.Fprintf(w, "Categories: %s\n", strings.Join(cats, ", "))
	}

	if u, ok := k.CorrespondingUsage(); ok {
		fmt.Fprintf(w, "Usage: %s\n", u)
	}
	if d, ok := k.CorrespondingDefinition(); ok {
		fmt.Fprintf(w, "Definition: %s\n", d)
	}
	if src, ok := k.RelationshipSourceType(); ok {
		tgt, _ := k.RelationshipTargetType()
		fmt.Fprintf(w, "Source: %s\n", src)
		fmt.Fprintf(w, "Target: %s\n", tgt)
	}
}

func joinKinds(ks []kind.Kind) string {
	if len(ks) == 0 {
		return "(none)"
	}
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
