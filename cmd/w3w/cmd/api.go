package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/what3words/w3w-go-wrapper/internal/cli"
	"github.com/what3words/w3w-go-wrapper/pkg/what3words"
)

func newSuggestCmd(a *app) *cobra.Command {
	var (
		nResults   int
		focus      string
		countries  []string
		language   string
		withCoords bool
	)

	c := &cobra.Command{
		Use:   "suggest <text>",
		Short: "Autosuggest 3was for a full or partial input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			input := strings.Join(args, " ")

			if nResults <= 0 {
				nResults = a.config.CLI.NResults
			}
			opts := what3words.NewAutosuggest(input).NResults(nResults)
			if focus != "" {
				point, err := what3words.ParseCoordinates(focus)
				if err != nil {
					return err
				}
				opts.Focus(point)
			}
			if len(countries) > 0 {
				opts.ClipToCountry(countries...)
			}
			if language != "" {
				opts.Language(language)
			}

			var res *what3words.AutosuggestResult
			if withCoords {
				res, err = client.AutosuggestWithCoordinates(cmd.Context(), opts)
			} else {
				res, err = client.Autosuggest(cmd.Context(), opts)
			}
			if err != nil {
				return err
			}
			cli.PrintSuggestions(printer(cmd.OutOrStdout()), input, res.Suggestions)
			return nil
		},
	}
	c.Flags().IntVarP(&nResults, "n-results", "n", 0, "Number of suggestions (default from config)")
	c.Flags().StringVar(&focus, "focus", "", "Rank suggestions near lat,lng higher")
	c.Flags().StringSliceVar(&countries, "country", nil, "Clip to ISO 3166-1 alpha-2 country codes")
	c.Flags().StringVar(&language, "language", "", "Language of the input")
	c.Flags().BoolVar(&withCoords, "coords", false, "Include coordinates (billed as a conversion per suggestion)")
	return c
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		geojson  bool
		language string
		locale   string
	)

	c := &cobra.Command{
		Use:   "convert <3wa|lat,lng>",
		Short: "Convert a 3wa to coordinates, or coordinates to a 3wa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if point, perr := what3words.ParseCoordinates(args[0]); perr == nil {
				opts := what3words.NewConvertTo3wa(point.Lat, point.Lng).Language(language).Locale(locale)
				if geojson {
					fc, err := client.ConvertTo3waGeoJSON(ctx, opts)
					if err != nil {
						return err
					}
					return writeJSON(out, fc)
				}
				addr, err := client.ConvertTo3wa(ctx, opts)
				if err != nil {
					return err
				}
				printAddress(out, addr)
				return nil
			}

			words := strings.TrimLeft(args[0], "/")
			opts := what3words.NewConvertToCoordinates(words).Locale(locale)
			if geojson {
				fc, err := client.ConvertToCoordinatesGeoJSON(ctx, opts)
				if err != nil {
					return err
				}
				return writeJSON(out, fc)
			}
			addr, err := client.ConvertToCoordinates(ctx, opts)
			if err != nil {
				return err
			}
			printAddress(out, addr)
			return nil
		},
	}
	c.Flags().BoolVar(&geojson, "geojson", false, "Print the GeoJSON response")
	c.Flags().StringVar(&language, "language", "", "Language of the returned 3wa")
	c.Flags().StringVar(&locale, "locale", "", "Locale of the returned 3wa")
	return c
}

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages and locales the API supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			res, err := client.AvailableLanguages(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, l := range res.Languages {
				fmt.Fprintf(out, "%-6s %s (%s)\n", l.Code, l.Name, l.NativeName)
				for _, loc := range l.Locales {
					fmt.Fprintf(out, "  %-8s %s (%s)\n", loc.Code, loc.Name, loc.NativeName)
				}
			}
			return nil
		},
	}
}

func printAddress(w io.Writer, addr *what3words.Address) {
	fmt.Fprintf(w, "words:         ///%s\n", addr.Words)
	fmt.Fprintf(w, "coordinates:   %s\n", addr.Coordinates)
	fmt.Fprintf(w, "square:        %s %s\n", addr.Square.Southwest, addr.Square.Northeast)
	fmt.Fprintf(w, "nearest place: %s, %s\n", addr.NearestPlace, addr.Country)
	fmt.Fprintf(w, "language:      %s\n", addr.Language)
	if addr.Map != "" {
		fmt.Fprintf(w, "map:           %s\n", addr.Map)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
