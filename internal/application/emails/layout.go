package emails

import (
	"fmt"
	"html"
	"time"
)

const siteName = "ArchCatalog"

const (
	themePrimary   = "#2F5D50"
	themeTextMain  = "#1F2937"
	themeTextMuted = "#6B7280"
	themeBgBody    = "#F4F1EA"
	themeWhite     = "#FFFFFF"
)

// Layout wraps content in the shared email frame.
func Layout(contentHTML string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%[1]s</title>
  <style>
    body { margin: 0; padding: 0; background: %[2]s; font-family: Helvetica, Arial, sans-serif; color: %[3]s; }
    .card { max-width: 560px; margin: 32px auto; background: %[4]s; border-radius: 8px; padding: 32px; }
    .button { display: inline-block; padding: 12px 24px; background: %[5]s; color: %[4]s; text-decoration: none; border-radius: 4px; }
    .footer { text-align: center; font-size: 12px; color: %[6]s; margin-top: 24px; }
  </style>
</head>
<body>
  <div class="card">
    %[7]s
  </div>
  <div class="footer">&copy; %[8]d %[1]s. Sustainable architecture, mapped.</div>
</body>
</html>`, siteName, themeBgBody, themeTextMain, themeWhite, themePrimary, themeTextMuted, contentHTML, time.Now().Year())
}

func waitlistContent(siteURL string) string {
	if siteURL == "" {
		siteURL = "https://archcatalog.app/"
	}
	return fmt.Sprintf(`
    <h1>You're on the list</h1>
    <p>Thanks for your interest in %s. The catalog is in private beta while we verify project data with the studios behind each building.</p>
    <p>We'll write again as soon as a spot opens up.</p>
    <center><a href="%s" class="button">Visit %s</a></center>`, siteName, html.EscapeString(siteURL), siteName)
}
