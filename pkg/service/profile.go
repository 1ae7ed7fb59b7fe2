package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/unihub/cli/pkg/api"
	"github.com/unihub/cli/pkg/errors"
	"github.com/unihub/cli/pkg/formatter"
	"github.com/unihub/cli/pkg/logger"
	"github.com/unihub/cli/pkg/output"
	"github.com/unihub/cli/pkg/prompter"
	"github.com/unihub/cli/pkg/session"
	"github.com/unihub/cli/pkg/state"
	"github.com/unihub/cli/pkg/validate"
)

// photoUploadLimit mirrors the server's daily photo upload budget
const photoUploadLimit = 3

// ProfileService drives the user's own profile: viewing, sectioned
// edits with local validation, and photo management.
type ProfileService struct {
	uploadBudget *state.SlidingWindow
}

// NewProfileService creates a profile service
func NewProfileService() *ProfileService {
	return &ProfileService{
		uploadBudget: state.NewSlidingWindow(photoUploadLimit, 24*time.Hour),
	}
}

// View fetches and displays the current user's profile
func (s *ProfileService) View() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	profile, err := api.GetMyProfile()
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	switch output.GetOutputFormat() {
	case output.FormatJSON:
		return formatter.PrintObject(profile, "")
	case output.FormatTable:
		record := make(map[string]interface{}, len(profileFieldValues(profile)))
		for name, value := range profileFieldValues(profile) {
			record[name] = value
		}
		formatter.PrintKeyValue(record)
		return nil
	}

	title := color.New(color.FgCyan, color.Bold)
	title.Printf("\n%s %s\n\n", profile.Name, profile.Surname)

	rows := [][2]string{
		{"Faculty", profile.Faculty},
		{"Level", profile.Level},
		{"Birthday", profile.Birthday},
		{"Relationship", profile.Relationship},
		{"Hobbies", profile.Hobbies},
		{"Favorite subjects", profile.FavoriteSubjects},
		{"Favorite professor", profile.Professor},
		{"Telegram", profile.Telegram},
		{"About me", profile.AboutMe},
		{"Photo", profile.PhotoPath},
	}
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = color.HiBlackString("(not set)")
		}
		fmt.Printf("  %-19s %s\n", row[0]+":", value)
	}
	fmt.Println()
	return nil
}

// EditSection validates the given field values against one section's
// form config and sends a partial update. Nothing reaches the wire when
// validation fails. On success the profile is re-fetched so the display
// reflects server-side sanitization instead of a local merge.
func (s *ProfileService) EditSection(sectionName string, values map[string]string) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	section, ok := validate.GetSection(sectionName)
	if !ok {
		return errors.ValidationError("section",
			"must be one of: "+strings.Join(validate.SectionNames, ", "))
	}

	payload, err := section.Validate(values)
	if err != nil {
		return err
	}

	echoed, err := api.UpdateProfileSection(sectionName, payload)
	if err != nil {
		formatter.PrintError("Failed to update %s section: %v", sectionName, err)
		return err
	}

	s.syncSessionName(echoed)

	formatter.PrintSuccess("Updated %s section", sectionName)

	profile, err := api.GetMyProfile()
	if err != nil {
		logger.Warn("Update succeeded but profile re-fetch failed", "error", err)
		return nil
	}
	s.displaySection(section, profile)
	return nil
}

// EditSectionInteractive prompts for each field of a section, showing
// current values and character counters, then submits the edits.
func (s *ProfileService) EditSectionInteractive(sectionName string) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	section, ok := validate.GetSection(sectionName)
	if !ok {
		return errors.ValidationError("section",
			"must be one of: "+strings.Join(validate.SectionNames, ", "))
	}

	profile, err := api.GetMyProfile()
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	current := profileFieldValues(profile)

	values := make(map[string]string)
	for _, field := range section.Fields {
		var input string
		if field.Kind == validate.KindSelect {
			label := field.Label
			if current[field.Name] != "" {
				label = fmt.Sprintf("%s [%s]", label, current[field.Name])
			}
			idx, err := prompter.PromptSelect(label, field.Options)
			if err != nil {
				return err
			}
			input = field.Options[idx]
		} else {
			label := field.Label
			if field.MaxLen > 0 {
				label = fmt.Sprintf("%s (max %d chars)", label, field.MaxLen)
			}
			var err error
			input, err = prompter.PromptWithDefault(label, current[field.Name])
			if err != nil {
				return err
			}
		}
		if input == current[field.Name] {
			continue // Unchanged, leave out of the partial update
		}
		values[field.Name] = input
	}

	if len(values) == 0 {
		formatter.PrintInfo("Nothing changed")
		return nil
	}

	return s.EditSection(sectionName, values)
}

// UploadPhoto validates the file locally, checks the daily budget, and
// uploads it as the new profile photo.
func (s *ProfileService) UploadPhoto(filePath string) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	if err := api.ValidatePhotoFile(filePath); err != nil {
		return err
	}

	if !s.uploadBudget.Allow() {
		wait := s.uploadBudget.RetryAfter().Round(time.Minute)
		return errors.RateLimitError(int(wait.Seconds())).
			WithSuggestion(fmt.Sprintf("Photo uploads are limited to %d per day. Try again in %s.", photoUploadLimit, wait))
	}

	resp, err := api.UploadPhoto(filePath)
	if err != nil {
		formatter.PrintError("Failed to upload photo: %v", err)
		return err
	}
	s.uploadBudget.Record()

	formatter.PrintSuccess("Photo uploaded (%d uploads left today)", resp.UploadsRemaining)
	if resp.Data.PhotoPath != "" {
		fmt.Printf("Photo: %s\n", resp.Data.PhotoPath)
	}
	return nil
}

// DeletePhoto removes the custom photo, reverting to the default avatar
func (s *ProfileService) DeletePhoto() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	confirmed, err := prompter.PromptConfirm("Delete your profile photo and revert to the default?")
	if err != nil {
		return err
	}
	if !confirmed {
		formatter.PrintInfo("Cancelled")
		return nil
	}

	if _, err := api.DeletePhoto(); err != nil {
		formatter.PrintError("Failed to delete photo: %v", err)
		return err
	}

	formatter.PrintSuccess("Photo deleted")
	return nil
}

// PhotoStats shows the daily photo upload quota
func (s *ProfileService) PhotoStats() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	stats, err := api.GetPhotoStats()
	if err != nil {
		return fmt.Errorf("failed to fetch photo stats: %w", err)
	}

	fmt.Printf("Uploads today:     %d\n", stats.UploadsToday)
	fmt.Printf("Uploads remaining: %d\n", stats.UploadsRemaining)
	if stats.LimitReached {
		formatter.PrintWarning("Daily upload limit reached")
	}
	if !stats.HasCustomPhoto {
		fmt.Println("Currently using the default avatar.")
	}
	return nil
}

// Sections lists the editable profile sections and their fields
func (s *ProfileService) Sections() {
	fmt.Println("\nEditable profile sections:")
	for _, name := range validate.SectionNames {
		section, _ := validate.GetSection(name)
		fields := make([]string, 0, len(section.Fields))
		for _, f := range section.Fields {
			fields = append(fields, f.Name)
		}
		fmt.Printf("  %-10s %s\n", name, strings.Join(fields, ", "))
	}
	fmt.Println()
}

// syncSessionName keeps the cached session's display name in step with
// edits to name and surname.
func (s *ProfileService) syncSessionName(echoed map[string]interface{}) {
	sess, err := session.Load()
	if err != nil || sess == nil {
		return
	}
	changed := false
	if name, ok := echoed["name"].(string); ok && name != "" && name != sess.Name {
		sess.Name = name
		changed = true
	}
	if surname, ok := echoed["surname"].(string); ok && surname != "" && surname != sess.Surname {
		sess.Surname = surname
		changed = true
	}
	if changed {
		if err := session.Save(sess); err != nil {
			logger.Warn("Could not update cached session name", "error", err)
		}
	}
}

func (s *ProfileService) displaySection(section validate.Section, profile *api.Profile) {
	values := profileFieldValues(profile)

	fmt.Println()
	for _, f := range section.Fields {
		value := values[f.Name]
		if value == "" {
			value = color.HiBlackString("(not set)")
		}
		fmt.Printf("  %-19s %s\n", f.Label+":", value)
	}
	fmt.Println()
}

func profileFieldValues(p *api.Profile) map[string]string {
	return map[string]string{
		"name":              p.Name,
		"surname":           p.Surname,
		"birthday":          p.Birthday,
		"level":             p.Level,
		"faculty":           p.Faculty,
		"favorite_subjects": p.FavoriteSubjects,
		"professor":         p.Professor,
		"relationship":      p.Relationship,
		"hobbies":           p.Hobbies,
		"telegram":          p.Telegram,
		"about_me":          p.AboutMe,
	}
}
