package templates

import (
	"fmt"
	"strings"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

// RenderLeaderboardDigestEmail generates the HTML for the weekly invite
// leaderboard digest email
func RenderLeaderboardDigestEmail(spaceID string, entries []models.ReferrerStats) string {
	var rows strings.Builder
	for i, entry := range entries {
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td class="rank">#%d</td>
        <td>%s</td>
        <td class="num">%d</td>
        <td class="num">%d</td>
        <td class="num">%d</td>
      </tr>`, i+1, entry.ReferrerID, entry.RealInvites, entry.TotalInvites, entry.Leaves))
	}
	if len(entries) == 0 {
		rows.WriteString(`
      <tr><td colspan="5" class="empty">No invite activity recorded this week.</td></tr>`)
	}

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Weekly Invite Leaderboard</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #0a0a0f; }
    .container { max-width: 600px; margin: 0 auto; background-color: #12121f; }
    .header { background: linear-gradient(135deg, #38bdf8 0%%, #0ea5e9 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #000; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #e5e7eb; }
    table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
    th { text-align: left; color: #38bdf8; font-size: 13px; text-transform: uppercase; padding: 8px; border-bottom: 1px solid rgba(255,255,255,0.2); }
    td { padding: 8px; border-bottom: 1px solid rgba(255,255,255,0.08); font-size: 14px; }
    .rank { color: #38bdf8; font-weight: 700; }
    .num { text-align: right; }
    .empty { color: #6b7280; text-align: center; padding: 20px; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid rgba(255,255,255,0.1); }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>📈 Weekly Invite Leaderboard</h1>
    </div>
    <div class="content">
      <p>Top referrers for space <strong>%s</strong> this week:</p>
      <table>
        <tr><th>Rank</th><th>Referrer</th><th>Real</th><th>Total</th><th>Leaves</th></tr>%s
      </table>
      <p>Real invites exclude members who left within the short-stay window.</p>
    </div>
    <div class="footer">
      <p>You are receiving this because digest emails are enabled for your space.</p>
    </div>
  </div>
</body>
</html>`, spaceID, rows.String())
}
