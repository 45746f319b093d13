package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/turf-admin/internal/export"
	"github.com/example/turf-admin/internal/models"
	"github.com/example/turf-admin/internal/store"
)

const usageText = `usage: turfadmin <command> [flags]

commands:
  login      -email -password
  logout
  users      list
  vendors    list | show -id | add | edit | status | delete
  venues     list | add | edit | delete | suspend
  amenities  list | add | update | delete
  rules      list | add | update | delete
  bookings   list | show -id | export
`

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Print(usageText)
		return nil
	}
	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		return a.cmdLogout(ctx)
	case "users":
		return a.cmdUsers(ctx, args[1:])
	case "vendors":
		return a.cmdVendors(ctx, args[1:])
	case "venues":
		return a.cmdVenues(ctx, args[1:])
	case "amenities":
		return a.cmdAmenities(ctx, args[1:])
	case "rules":
		return a.cmdRules(ctx, args[1:])
	case "bookings":
		return a.cmdBookings(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usageText)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login: -email and -password are required")
	}
	if err := a.auth.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

// Logout clears the in-memory session; clearing durable storage is this
// caller's job.
func (a *app) cmdLogout(ctx context.Context) error {
	a.auth.Logout()
	if err := a.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored token: %w", err)
	}
	fmt.Println("logged out")
	return nil
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	if sub(args) != "list" {
		return fmt.Errorf("users: expected 'list'")
	}
	if err := a.users.Fetch(ctx); err != nil {
		return err
	}
	return printJSON(a.users.Snapshot().Items)
}

func (a *app) cmdVendors(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vendors", flag.ContinueOnError)
	id := fs.String("id", "", "vendor id")
	name := fs.String("name", "", "vendor name")
	phone := fs.String("phone", "", "vendor phone")
	location := fs.String("location", "", "comma-separated address parts")
	gps := fs.String("gps", "", "google maps link")
	status := fs.String("status", "", "Active or Inactive")

	action := sub(args)
	if err := fs.Parse(rest(args)); err != nil {
		return err
	}
	form := store.VendorForm{
		Name:          *name,
		LocationParts: splitParts(*location),
		Phone:         *phone,
		GPSURL:        *gps,
	}

	switch action {
	case "list":
		if err := a.vendors.Fetch(ctx); err != nil {
			return err
		}
		return printJSON(a.vendors.Snapshot().Items)
	case "show":
		v, err := a.vendors.FetchByID(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(v)
	case "add":
		v, err := a.vendors.Add(ctx, form)
		if err != nil {
			return err
		}
		return printJSON(v)
	case "edit":
		if *id == "" {
			return fmt.Errorf("vendors edit: -id is required")
		}
		v, err := a.vendors.Edit(ctx, *id, form)
		if err != nil {
			return err
		}
		return printJSON(v)
	case "status":
		if *id == "" || (*status != models.VendorActive && *status != models.VendorInactive) {
			return fmt.Errorf("vendors status: -id and -status=Active|Inactive are required")
		}
		return a.vendors.SetStatus(ctx, *id, *status)
	case "delete":
		if *id == "" {
			return fmt.Errorf("vendors delete: -id is required")
		}
		return a.vendors.Delete(ctx, *id)
	default:
		return fmt.Errorf("vendors: unknown action %q", action)
	}
}

func (a *app) cmdVenues(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("venues", flag.ContinueOnError)
	vendorID := fs.String("vendor", "", "owning vendor id")
	turfID := fs.String("turf", "", "turf id")
	file := fs.String("file", "", "JSON file with the venue payload")

	action := sub(args)
	if err := fs.Parse(rest(args)); err != nil {
		return err
	}

	switch action {
	case "list":
		if err := a.venues.Fetch(ctx); err != nil {
			return err
		}
		return printJSON(a.venues.Snapshot().Items)
	case "add":
		if *vendorID == "" {
			return fmt.Errorf("venues add: -vendor is required")
		}
		venue, err := readVenueFile(*file)
		if err != nil {
			return err
		}
		created, err := a.venues.Add(ctx, *vendorID, venue)
		if err != nil {
			return err
		}
		return printJSON(created)
	case "edit":
		if *vendorID == "" || *turfID == "" {
			return fmt.Errorf("venues edit: -vendor and -turf are required")
		}
		venue, err := readVenueFile(*file)
		if err != nil {
			return err
		}
		updated, err := a.venues.Edit(ctx, *vendorID, *turfID, venue)
		if err != nil {
			return err
		}
		return printJSON(updated)
	case "delete":
		if *vendorID == "" || *turfID == "" {
			return fmt.Errorf("venues delete: -vendor and -turf are required")
		}
		return a.venues.Delete(ctx, *vendorID, *turfID)
	case "suspend":
		if *vendorID == "" || *turfID == "" {
			return fmt.Errorf("venues suspend: -vendor and -turf are required")
		}
		return a.venues.Suspend(ctx, *vendorID, *turfID)
	default:
		return fmt.Errorf("venues: unknown action %q", action)
	}
}

func (a *app) cmdAmenities(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("amenities", flag.ContinueOnError)
	id := fs.String("id", "", "amenity id")
	name := fs.String("name", "", "amenity name")
	description := fs.String("description", "", "amenity description")
	icon := fs.String("icon", "", "icon name")

	action := sub(args)
	if err := fs.Parse(rest(args)); err != nil {
		return err
	}
	payload := models.Amenity{Name: *name, Description: *description, Icon: *icon}

	switch action {
	case "list":
		if err := a.amenities.Fetch(ctx); err != nil {
			return err
		}
		return printJSON(a.amenities.Snapshot().Items)
	case "add":
		created, err := a.amenities.Create(ctx, payload)
		if err != nil {
			return err
		}
		return printJSON(created)
	case "update":
		if *id == "" {
			return fmt.Errorf("amenities update: -id is required")
		}
		updated, err := a.amenities.Update(ctx, *id, payload)
		if err != nil {
			return err
		}
		return printJSON(updated)
	case "delete":
		if *id == "" {
			return fmt.Errorf("amenities delete: -id is required")
		}
		return a.amenities.Delete(ctx, *id)
	default:
		return fmt.Errorf("amenities: unknown action %q", action)
	}
}

func (a *app) cmdRules(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	id := fs.String("id", "", "rule id")
	name := fs.String("name", "", "rule name")
	description := fs.String("description", "", "rule description")

	action := sub(args)
	if err := fs.Parse(rest(args)); err != nil {
		return err
	}
	payload := models.Rule{Name: *name, Description: *description}

	switch action {
	case "list":
		if err := a.rules.Fetch(ctx); err != nil {
			return err
		}
		return printJSON(a.rules.Snapshot().Items)
	case "add":
		created, err := a.rules.Create(ctx, payload)
		if err != nil {
			return err
		}
		return printJSON(created)
	case "update":
		if *id == "" {
			return fmt.Errorf("rules update: -id is required")
		}
		updated, err := a.rules.Update(ctx, *id, payload)
		if err != nil {
			return err
		}
		return printJSON(updated)
	case "delete":
		if *id == "" {
			return fmt.Errorf("rules delete: -id is required")
		}
		return a.rules.Delete(ctx, *id)
	default:
		return fmt.Errorf("rules: unknown action %q", action)
	}
}

func (a *app) cmdBookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	id := fs.String("id", "", "booking id")
	search := fs.String("search", "", "filter by turf name")

	action := sub(args)
	if err := fs.Parse(rest(args)); err != nil {
		return err
	}

	switch action {
	case "list":
		if err := a.dashboard.Fetch(ctx); err != nil {
			return err
		}
		state := a.dashboard.Snapshot()
		fmt.Printf("total: %d\n", state.Total)
		return printJSON(filterBookings(state.Bookings, *search))
	case "show":
		if *id == "" {
			return fmt.Errorf("bookings show: -id is required")
		}
		b, err := a.dashboard.FetchBookingDetails(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(b)
	case "export":
		if err := a.dashboard.Fetch(ctx); err != nil {
			return err
		}
		bookings := filterBookings(a.dashboard.Snapshot().Bookings, *search)
		path, err := a.exporter.ToSpreadsheet(export.BookingRows(bookings), "Bookings")
		if err != nil {
			return err
		}
		fmt.Println("saved", path)
		return nil
	default:
		return fmt.Errorf("bookings: unknown action %q", action)
	}
}

func filterBookings(bookings []models.Booking, search string) []models.Booking {
	if search == "" {
		return bookings
	}
	needle := strings.ToLower(search)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.TurfName), needle) {
			out = append(out, b)
		}
	}
	return out
}

func readVenueFile(path string) (models.Venue, error) {
	var v models.Venue
	if path == "" {
		return v, fmt.Errorf("-file with a venue JSON payload is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func splitParts(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func sub(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func rest(args []string) []string {
	if len(args) <= 1 {
		return nil
	}
	return args[1:]
}
