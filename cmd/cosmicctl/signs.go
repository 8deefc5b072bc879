package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/cosmic-blueprint/internal/domain/astro"
	"github.com/yanqian/cosmic-blueprint/internal/domain/chinese"
	"github.com/yanqian/cosmic-blueprint/internal/domain/lifestage"
)

var signsJSON bool

var signsCmd = &cobra.Command{
	Use:   "signs",
	Short: "List the zodiac tables",
	Long:  `Print the tropical zodiac date ranges with element, modality and ruler, followed by the Chinese zodiac cycle.`,
	Args:  cobra.NoArgs,
	RunE:  runSigns,
}

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List life stage keys",
	Args:  cobra.NoArgs,
	RunE:  runStages,
}

func init() {
	signsCmd.Flags().BoolVar(&signsJSON, "json", false, "Print the western table as JSON")
}

type signRow struct {
	Sign     string         `json:"sign"`
	Glyph    string         `json:"glyph"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Element  astro.Element  `json:"element"`
	Modality astro.Modality `json:"modality"`
	Ruler    string         `json:"rulingPlanet"`
}

func signRows() []signRow {
	boundaries := astro.Boundaries()
	rows := make([]signRow, 0, len(boundaries))
	for _, b := range boundaries {
		rows = append(rows, signRow{
			Sign:     b.Sign,
			Glyph:    b.Glyph,
			From:     monthDay(b.StartMonth, b.StartDay),
			To:       monthDay(b.EndMonth, b.EndDay),
			Element:  b.Element,
			Modality: b.Modality,
			Ruler:    b.RulingPlanet,
		})
	}
	return rows
}

func runSigns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	rows := signRows()
	if signsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SIGN\tGLYPH\tFROM\tTO\tELEMENT\tMODALITY\tRULER")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Sign, r.Glyph, r.From, r.To, r.Element, r.Modality, r.Ruler)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\nChinese cycle: %s\n", strings.Join(chinese.Animals(), ", "))
	return err
}

func runStages(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL")
	for _, s := range lifestage.Stages() {
		fmt.Fprintf(w, "%s\t%s %s\n", s, lifestage.Icon(s), lifestage.Label(s))
	}
	return w.Flush()
}

func monthDay(month, day int) string {
	return fmt.Sprintf("%s %02d", time.Month(month).String()[:3], day)
}
