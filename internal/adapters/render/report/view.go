package report

import (
	"fmt"
	"math"
	"time"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ShowWait appends the wait before the next pass.
	ShowWait bool
}

func renderView(pass domain.PassReport, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Mining pass " + pass.StartedAt.Format("2006-01-02 15:04:05")),
		s.header.Render(fmt.Sprintf("accounts: %d", len(pass.Accounts))),
	}

	if len(pass.Accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts processed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range pass.Accounts {
		lines = append(lines, s.section.Render(renderAccount(account, s)))
	}

	if opts.ShowWait {
		lines = append(lines, s.section.Render(s.wait.Render(fmt.Sprintf("next pass in %s", formatDuration(pass.Wait())))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(account domain.AccountReport, s styles) string {
	if !account.Authenticated {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.account.Render(account.Label),
			s.failed.Render("authentication failed"),
			s.detail.Render("retry in "+formatDuration(account.Delay)),
		)
	}

	title := account.Label
	if account.User.Username != "" && account.User.Username != account.Label {
		title = fmt.Sprintf("%s (%s)", account.User.Username, account.Label)
	}

	parts := []string{
		s.account.Render(title),
		s.detail.Render(fmt.Sprintf("balance: %s SOL | %s CGXMAS", account.User.SolBalance.String(), account.User.CgxmasBalance.String())),
		miningLine(account, s),
		dailyLine(account, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func miningLine(account domain.AccountReport, s styles) string {
	label := s.key.Render("mining:")
	if !account.StatusChecked {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.failed.Render("status unavailable"))
	}
	if account.Claim == domain.StepSkipped {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.detail.Render("claimable in "+formatDuration(account.Remaining)))
	}

	claim := outcome(account.Claim, s)
	if account.Claim == domain.StepSucceeded {
		claim = s.ok.Render(fmt.Sprintf("claimed %s", account.TokensEarned.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		label, " ", claim,
		s.key.Render(" | restart: "), outcome(account.Restart, s),
		s.key.Render(" | next: "), s.detail.Render(formatDuration(account.Delay)),
	)
}

func dailyLine(account domain.AccountReport, s styles) string {
	label := s.key.Render("daily:")
	switch {
	case account.DailyCheck == domain.StepFailed:
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.failed.Render("check-in failed"))
	case account.DailyClaim == domain.StepSkipped:
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.skipped.Render("nothing to claim"))
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			label, " ", s.detail.Render(fmt.Sprintf("day %d", account.ClaimedDay)), " ", outcome(account.DailyClaim, s),
		)
	}
}

func outcome(step domain.StepOutcome, s styles) string {
	switch step {
	case domain.StepSucceeded:
		return s.ok.Render("ok")
	case domain.StepFailed:
		return s.failed.Render("failed")
	default:
		return s.skipped.Render("skipped")
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(math.Ceil(d.Seconds())))
	}

	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}

	return fmt.Sprintf("%dh%02dm", hours, minutes)
}
