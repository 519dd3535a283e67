package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/pkg/api/client"
	"team-showcase.backend/pkg/utils"
)

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	return nil
}

// visited reports which flags were given on the command line, so an update
// only sends the fields the operator named.
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func optional(set map[string]bool, name string, value *string) *string {
	if !set[name] {
		return nil
	}
	return value
}

func requireID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, usageError("-id is required")
	}
	id, err := utils.ParseID(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, usageError("invalid -id %q", raw)
	}
	return id, nil
}

func (c *cli) commandLogin(args []string) error {
	fs := c.flags("login")
	password := fs.String("password", "", "Admin password (supply to avoid prompt)")
	apiBase := fs.String("api", "", "API base URL (default "+client.DefaultBaseURL+")")
	if err := parse(fs, args); err != nil {
		return err
	}

	secret := *password
	if secret == "" {
		if !isTerminal() {
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			secret = strings.TrimRight(line, "\r\n")
		} else {
			fmt.Fprint(c.errOut, "Admin password: ")
			raw, err := readPassword()
			fmt.Fprintln(c.errOut)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			secret = string(raw)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if strings.TrimSpace(*apiBase) != "" {
		cfg.APIBaseURL = strings.TrimSpace(*apiBase)
	}
	api, err := client.New(cfg.APIBaseURL)
	if err != nil {
		return err
	}

	ctx, cancel := c.timeout()
	defer cancel()
	token, err := api.Login(ctx, secret)
	if err != nil {
		return err
	}

	cfg.APIBaseURL = api.BaseURL()
	cfg.AccessToken = token.AccessToken
	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	c.ok("Logged in to %s (token valid until %s)", cfg.APIBaseURL, token.ExpiresAt.Local().Format(time.RFC1123))
	return nil
}

func (c *cli) commandLogout(args []string) error {
	if err := parse(c.flags("logout"), args); err != nil {
		return err
	}
	api, cfg, err := c.client()
	if err != nil {
		return err
	}
	if cfg.AccessToken == "" {
		c.ok("Not logged in")
		return nil
	}

	ctx, cancel := c.timeout()
	defer cancel()
	// The local token is dropped even when the server refuses, so a stale
	// token cannot wedge the CLI.
	revokeErr := api.Logout(ctx)
	cfg.AccessToken = ""
	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if revokeErr != nil && !client.IsStatus(revokeErr, http.StatusUnauthorized) {
		return fmt.Errorf("token cleared locally, server logout failed: %w", revokeErr)
	}
	c.ok("Logged out")
	return nil
}

func (c *cli) commandProfile(args []string) error {
	if len(args) == 0 {
		return usageError("teamctl profile [show|update]")
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}
	ctx, cancel := c.timeout()
	defer cancel()

	switch args[0] {
	case "show":
		if err := parse(c.flags("profile show"), args[1:]); err != nil {
			return err
		}
		profile, err := api.Profile(ctx)
		if err != nil {
			return err
		}
		c.printProfile(profile)
		c.ok("Profile loaded")
		return nil

	case "update":
		fs := c.flags("profile update")
		name := fs.String("name", "", "Team name")
		description := fs.String("description", "", "Description")
		founded := fs.String("founded", "", "Founding year")
		logo := fs.String("logo", "", "Logo URL or data URI")
		tagline := fs.String("tagline", "", "Tagline")
		email := fs.String("contact-email", "", "Contact email")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		set := visited(fs)
		patch := entities.TeamProfilePatch{
			Name:         optional(set, "name", name),
			Description:  optional(set, "description", description),
			Founded:      optional(set, "founded", founded),
			Logo:         optional(set, "logo", logo),
			Tagline:      optional(set, "tagline", tagline),
			ContactEmail: optional(set, "contact-email", email),
		}
		if patch.IsEmpty() {
			return usageError("nothing to update")
		}
		profile, err := api.UpdateProfile(ctx, patch)
		if err != nil {
			return err
		}
		c.printProfile(profile)
		c.ok("Team profile updated")
		return nil

	default:
		return usageError("unknown profile command: %s", args[0])
	}
}

func (c *cli) printProfile(p entities.TeamProfile) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s\n", p.Name)
	fmt.Fprintf(w, "Tagline\t%s\n", p.Tagline)
	fmt.Fprintf(w, "Founded\t%s\n", p.Founded)
	fmt.Fprintf(w, "Contact\t%s\n", p.ContactEmail)
	fmt.Fprintf(w, "Logo\t%s\n", abbreviate(p.Logo, 60))
	fmt.Fprintf(w, "About\t%s\n", p.Description)
	_ = w.Flush()
}

type memberFlags struct {
	fs                                             *flag.FlagSet
	name, role, avatar, signature, blog, direction *string
}

func (c *cli) memberFlagSet(name string) memberFlags {
	fs := c.flags(name)
	return memberFlags{
		fs:        fs,
		name:      fs.String("name", "", "Member name"),
		role:      fs.String("role", "", "Role, e.g. Web / Pwn"),
		avatar:    fs.String("avatar", "", "Avatar URL or data URI"),
		signature: fs.String("signature", "", "Signature line"),
		blog:      fs.String("blog", "", "Blog URL"),
		direction: fs.String("direction", "", "Research direction"),
	}
}

func (c *cli) commandMembers(args []string) error {
	if len(args) == 0 {
		return usageError("teamctl members [list|create|update|delete|purge]")
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}
	ctx, cancel := c.timeout()
	defer cancel()

	switch args[0] {
	case "list":
		fs := c.flags("members list")
		all := fs.Bool("all", false, "Include inactive members")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		members, err := api.ListMembers(ctx, *all)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tROLE\tACTIVE\tJOINED")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", m.ID, m.Name, m.Role, m.IsActive, m.JoinDate.Format("2006-01-02"))
		}
		_ = w.Flush()
		c.ok("%d member(s)", len(members))
		return nil

	case "create":
		f := c.memberFlagSet("members create")
		if err := parse(f.fs, args[1:]); err != nil {
			return err
		}
		member, err := api.CreateMember(ctx, entities.CreateMemberInput{
			Name:      *f.name,
			Role:      *f.role,
			Avatar:    *f.avatar,
			Signature: *f.signature,
			Blog:      *f.blog,
			Direction: *f.direction,
		})
		if err != nil {
			return err
		}
		c.ok("Member created: %s (%s)", member.Name, member.ID)
		return nil

	case "update":
		f := c.memberFlagSet("members update")
		rawID := f.fs.String("id", "", "Member ID")
		active := f.fs.Bool("active", true, "Whether the member is shown publicly")
		if err := parse(f.fs, args[1:]); err != nil {
			return err
		}
		id, err := requireID(*rawID)
		if err != nil {
			return err
		}
		set := visited(f.fs)
		patch := entities.MemberPatch{
			Name:      optional(set, "name", f.name),
			Role:      optional(set, "role", f.role),
			Avatar:    optional(set, "avatar", f.avatar),
			Signature: optional(set, "signature", f.signature),
			Blog:      optional(set, "blog", f.blog),
			Direction: optional(set, "direction", f.direction),
		}
		if set["active"] {
			patch.IsActive = active
		}
		if patch.IsEmpty() {
			return usageError("nothing to update")
		}
		member, err := api.UpdateMember(ctx, id, patch)
		if err != nil {
			return err
		}
		c.ok("Member updated: %s", member.Name)
		return nil

	case "delete", "purge":
		fs := c.flags("members " + args[0])
		rawID := fs.String("id", "", "Member ID")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		id, err := requireID(*rawID)
		if err != nil {
			return err
		}
		if args[0] == "purge" {
			if err := api.PurgeMember(ctx, id); err != nil {
				return err
			}
			c.ok("Member permanently deleted")
			return nil
		}
		if err := api.DeactivateMember(ctx, id); err != nil {
			return err
		}
		c.ok("Member deactivated")
		return nil

	default:
		return usageError("unknown members command: %s", args[0])
	}
}

func (c *cli) commandAchievements(args []string) error {
	if len(args) == 0 {
		return usageError("teamctl achievements [list|create|update|delete]")
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}
	ctx, cancel := c.timeout()
	defer cancel()

	fs := c.flags("achievements " + args[0])
	rawID := fs.String("id", "", "Achievement ID")
	year := fs.Int("year", 0, "Year")
	title := fs.String("title", "", "Competition")
	award := fs.String("award", "", "Award")
	description := fs.String("description", "", "Description")
	location := fs.String("location", "", "Location")
	if err := parse(fs, args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		items, err := api.ListAchievements(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tYEAR\tTITLE\tAWARD\tLOCATION")
		for _, a := range items {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", a.ID, a.Year, a.Title, a.Award, a.Location)
		}
		_ = w.Flush()
		c.ok("%d achievement(s)", len(items))
		return nil

	case "create":
		item, err := api.CreateAchievement(ctx, entities.CreateAchievementInput{
			Year:        *year,
			Title:       *title,
			Award:       *award,
			Description: *description,
			Location:    *location,
		})
		if err != nil {
			return err
		}
		c.ok("Achievement created: %d %s (%s)", item.Year, item.Title, item.ID)
		return nil

	case "update":
		id, err := requireID(*rawID)
		if err != nil {
			return err
		}
		set := visited(fs)
		patch := entities.AchievementPatch{
			Title:       optional(set, "title", title),
			Award:       optional(set, "award", award),
			Description: optional(set, "description", description),
			Location:    optional(set, "location", location),
		}
		if set["year"] {
			patch.Year = year
		}
		if patch.IsEmpty() {
			return usageError("nothing to update")
		}
		item, err := api.UpdateAchievement(ctx, id, patch)
		if err != nil {
			return err
		}
		c.ok("Achievement updated: %d %s", item.Year, item.Title)
		return nil

	case "delete":
		id, err := requireID(*rawID)
		if err != nil {
			return err
		}
		if err := api.DeleteAchievement(ctx, id); err != nil {
			return err
		}
		c.ok("Achievement deleted")
		return nil

	default:
		return usageError("unknown achievements command: %s", args[0])
	}
}

func (c *cli) commandApplications(args []string) error {
	if len(args) == 0 {
		return usageError("teamctl applications [list|review|delete]")
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}
	ctx, cancel := c.timeout()
	defer cancel()

	fs := c.flags("applications " + args[0])
	rawID := fs.String("id", "", "Application ID")
	status := fs.String("status", "", "pending, reviewed, approved or rejected")
	notes := fs.String("notes", "", "Review notes")
	if err := parse(fs, args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		apps, err := api.ListApplications(ctx, strings.TrimSpace(*status))
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tNAME\tEMAIL\tSKILLS\tSUBMITTED")
		for _, a := range apps {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Status, a.Name, a.Email, abbreviate(a.Skills, 30), a.SubmittedAt.Local().Format("2006-01-02 15:04"))
		}
		_ = w.Flush()
		c.ok("%d application(s)", len(apps))
		return nil

	case "review":
		id, err := requireID(*rawID)
		if err != nil {
			return err
		}
		input := entities.ReviewApplicationInput{Status: strings.TrimSpace(*status)}
		if visited(fs)["notes"] {
			input.ReviewNotes = notes
		}
		app, err := api.ReviewApplication(ctx, id, input)
		if err != nil {
			return err
		}
		c.ok("Application from %s marked %s", app.Name, app.Status)
		return nil

	case "delete":
		id, err := requireID(*rawID)
		if err != nil {
			return err
		}
		if err := api.DeleteApplication(ctx, id); err != nil {
			return err
		}
		c.ok("Application deleted")
		return nil

	default:
		return usageError("unknown applications command: %s", args[0])
	}
}

func (c *cli) commandStats(args []string) error {
	if err := parse(c.flags("stats"), args); err != nil {
		return err
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}
	ctx, cancel := c.timeout()
	defer cancel()

	stats, err := api.Stats(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Active members\t%d\n", stats.Members)
	fmt.Fprintf(w, "Achievements\t%d\n", stats.Achievements)
	fmt.Fprintf(w, "Applications\t%d\n", stats.Applications)
	fmt.Fprintf(w, "Pending review\t%d\n", stats.PendingApplications)
	_ = w.Flush()
	c.ok("Stats loaded")
	return nil
}

// commandHealth checks the server once, or with -watch polls until interrupted
// and prints a line whenever connectivity changes.
func (c *cli) commandHealth(args []string) error {
	fs := c.flags("health")
	watch := fs.Bool("watch", false, "Keep polling and report changes")
	interval := fs.Duration("interval", 5*time.Second, "Polling interval for -watch")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *interval <= 0 {
		return usageError("-interval must be positive")
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}

	if !*watch {
		ctx, cancel := c.timeout()
		defer cancel()
		h, err := api.Health(ctx)
		if err != nil {
			return err
		}
		if !h.Connected {
			return fmt.Errorf("server up, %s store unreachable: %s", h.Store, h.Error)
		}
		c.ok("Server healthy (%s store connected)", h.Store)
		return nil
	}

	last := ""
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		state := c.reachability(api)
		if state != last {
			fmt.Fprintf(c.out, "%s  %s\n", time.Now().Format("15:04:05"), state)
			last = state
		}
		select {
		case <-c.ctx.Done():
			c.ok("Stopped watching")
			return nil
		case <-ticker.C:
		}
	}
}

func (c *cli) reachability(api *client.Client) string {
	ctx, cancel := c.timeout()
	defer cancel()
	h, err := api.Health(ctx)
	switch {
	case err != nil:
		if c.ctx.Err() != nil {
			return "interrupted"
		}
		return "server unreachable: " + err.Error()
	case !h.Connected:
		return fmt.Sprintf("degraded: %s store disconnected", h.Store)
	default:
		return fmt.Sprintf("ok: %s store connected", h.Store)
	}
}

// commandShow renders the public page. It never fails on fetch errors; it
// falls back like the website does and notes what could not be loaded.
func (c *cli) commandShow(args []string) error {
	if err := parse(c.flags("show"), args); err != nil {
		return err
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}
	ctx, cancel := c.timeout()
	defer cancel()

	show := client.NewShowcase(api)
	var fallbacks []string
	show.OnError = func(op string, _ error) { fallbacks = append(fallbacks, op) }

	profile := show.Profile(ctx)
	members := show.Members(ctx)
	achievements := show.Achievements(ctx)

	fmt.Fprintf(c.out, "%s\n%s\n\n%s\n", profile.Name, profile.Tagline, profile.Description)
	fmt.Fprintf(c.out, "Founded %s · %s\n\n", profile.Founded, profile.ContactEmail)

	fmt.Fprintf(c.out, "Members (%d)\n", len(members))
	for _, m := range members {
		line := fmt.Sprintf("  %s, %s", m.Name, m.Role)
		if m.Direction != "" {
			line += " · " + m.Direction
		}
		if m.Signature != "" {
			line += fmt.Sprintf(" %q", m.Signature)
		}
		fmt.Fprintln(c.out, line)
	}

	fmt.Fprintf(c.out, "\nAchievements (%d)\n", len(achievements))
	for _, a := range achievements {
		fmt.Fprintf(c.out, "  %d  %s, %s\n", a.Year, a.Title, a.Award)
	}

	if len(fallbacks) > 0 {
		fmt.Fprintf(c.errOut, "! could not load %s, showing defaults\n", strings.Join(fallbacks, ", "))
	}
	return nil
}

func (c *cli) commandApply(args []string) error {
	fs := c.flags("apply")
	name := fs.String("name", "", "Your name")
	email := fs.String("email", "", "Contact email")
	skills := fs.String("skills", "", "Skills, e.g. web, pwn")
	phone := fs.String("phone", "", "Phone (optional)")
	message := fs.String("message", "", "Message (optional)")
	key := fs.String("key", "", "Idempotency key; reuse it to retry safely")
	if err := parse(fs, args); err != nil {
		return err
	}
	api, _, err := c.client()
	if err != nil {
		return err
	}
	ctx, cancel := c.timeout()
	defer cancel()

	input := entities.SubmitApplicationInput{
		Name:    *name,
		Email:   *email,
		Phone:   *phone,
		Skills:  *skills,
		Message: *message,
	}
	var app entities.Application
	if strings.TrimSpace(*key) != "" {
		app, err = api.ApplyWithKey(ctx, strings.TrimSpace(*key), input)
	} else {
		app, err = client.NewShowcase(api).Apply(ctx, input)
	}
	if err != nil {
		return err
	}
	c.ok("Application submitted (%s), we will be in touch", app.ID)
	return nil
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
