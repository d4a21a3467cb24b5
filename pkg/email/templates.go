package email

import (
	"fmt"
)

// ReportReadyData carries everything the report-ready notification needs.
type ReportReadyData struct {
	TakerName   string
	Email       string
	OrgName     string
	ProfileName string
	ReportURL   string
}

// BuildReportReadyEmail creates the message sent to a taker once their
// result has been scored and the report rendered.
func BuildReportReadyEmail(data ReportReadyData) Message {
	orgName := data.OrgName
	if orgName == "" {
		orgName = "Resonara"
	}

	takerName := data.TakerName
	if takerName == "" {
		takerName = "there"
	}

	subject := fmt.Sprintf("Your %s report is ready", orgName)

	textBody := fmt.Sprintf(`Hi %s,

Your assessment with %s is complete.

Your profile: %s

View your full report here:
%s

Thanks,
The %s Team`,
		takerName, orgName, data.ProfileName, data.ReportURL, orgName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your assessment with %s is complete.</p>
    <p>Your profile: <strong>%s</strong></p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Your Report</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		takerName, orgName, data.ProfileName, data.ReportURL, orgName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// MemberInviteData carries the data for an operator invitation.
type MemberInviteData struct {
	Name         string
	Email        string
	OrgName      string
	Role         string
	PortalURL    string
	TempPassword string
}

// BuildMemberInviteEmail creates the invitation sent when an operator account
// is created for an organization.
func BuildMemberInviteEmail(data MemberInviteData) Message {
	name := data.Name
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("You've been added to %s", data.OrgName)

	textBody := fmt.Sprintf(`Hi %s,

You've been added to %s as %s.

Sign in here with the temporary password below and change it right away:
%s

Temporary password: %s

Thanks,
The %s Team`,
		name, data.OrgName, data.Role, data.PortalURL, data.TempPassword, data.OrgName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>You've been added to <strong>%s</strong> as <strong>%s</strong>.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Sign In</a>
    </p>
    <p>Temporary password:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">%s</p>
    <p>Please change it right after your first sign-in.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.OrgName, data.Role, data.PortalURL, data.TempPassword, data.OrgName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
