package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/cosmic-blueprint/internal/domain/lifestage"
	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
	"github.com/yanqian/cosmic-blueprint/internal/infra/geocode"
)

type profileFlags struct {
	name      string
	dob       string
	birthTime string
	place     string
	stage     string
	latitude  string
	longitude string
	offset    string
	online    bool
	timeout   time.Duration
}

var profileOpts = defaultProfileFlags()

func defaultProfileFlags() profileFlags {
	return profileFlags{
		stage:   string(lifestage.PreferNotToSay),
		timeout: 10 * time.Second,
	}
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Compute the profile for a birth date",
	Long: `Compute numerology, sun/moon/rising signs, Chinese zodiac and life stage
context for one person and print it as JSON.

Birth places resolve against the built-in city table. Pass --online to fall
back to OpenStreetMap Nominatim for places the table does not know.

Example:
  cosmicctl profile --name "Ada Lovelace" --dob 1815-12-10 --time 13:00 --place London`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func init() {
	f := profileCmd.Flags()
	f.StringVar(&profileOpts.name, "name", "", "Full birth name")
	f.StringVar(&profileOpts.dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	f.StringVar(&profileOpts.birthTime, "time", "", "Local birth time (HH:MM)")
	f.StringVar(&profileOpts.place, "place", "", "Birth place, e.g. \"Lisbon, Portugal\"")
	f.StringVar(&profileOpts.stage, "stage", profileOpts.stage, "Life stage key, see 'cosmicctl stages'")
	f.StringVar(&profileOpts.latitude, "lat", "", "Birth latitude in degrees")
	f.StringVar(&profileOpts.longitude, "lon", "", "Birth longitude in degrees")
	f.StringVar(&profileOpts.offset, "tz", "", "UTC offset in hours at birth")
	f.BoolVar(&profileOpts.online, "online", false, "Use Nominatim when the city table has no match")
	f.DurationVar(&profileOpts.timeout, "timeout", profileOpts.timeout, "Overall timeout")

	_ = profileCmd.MarkFlagRequired("name")
	_ = profileCmd.MarkFlagRequired("dob")
}

func runProfile(cmd *cobra.Command, args []string) error {
	req, err := profileOpts.request()
	if err != nil {
		return err
	}

	log := cliLogger()
	var remote geocode.Searcher
	if profileOpts.online {
		remote = geocode.NewNominatim(geocode.NominatimConfig{})
	}
	svc := reading.NewService(reading.Config{}, nil, geocode.New(remote, log), nil, nil, nil, log)

	ctx := commandContext(cmd)
	if profileOpts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, profileOpts.timeout)
		defer cancel()
	}

	profile, err := svc.Profile(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

func (f profileFlags) request() (reading.Request, error) {
	req := reading.Request{
		FullName:    f.name,
		DateOfBirth: f.dob,
		BirthTime:   f.birthTime,
		BirthPlace:  f.place,
		LifeStage:   f.stage,
	}
	var err error
	if req.Latitude, err = optionalFloat("lat", f.latitude); err != nil {
		return reading.Request{}, err
	}
	if req.Longitude, err = optionalFloat("lon", f.longitude); err != nil {
		return reading.Request{}, err
	}
	if req.TimezoneOffsetHours, err = optionalFloat("tz", f.offset); err != nil {
		return reading.Request{}, err
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return reading.Request{}, fmt.Errorf("--lat and --lon must be given together")
	}
	return req, nil
}

func optionalFloat(flag, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", flag, raw, err)
	}
	return &v, nil
}
