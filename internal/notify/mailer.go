package notify

import (
	"context"
	"fmt"
)

// Sender delivers a notification email to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ShareSubject is the subject line for share notifications.
const ShareSubject = "A new Cador file"

// ShareEmailBody renders the share notification sent to each recipient.
// The presigned link expires one hour after generation.
func ShareEmailBody(ownerName, presignedURL string) string {
	return fmt.Sprintf(`Hi dear Cador,<br>
A new file has been shared with you by %s<br />

If you want to download it, please click the link below (valid for one hour):<br />

%s<br />

Sincerely,

TheCadors team
`, ownerName, presignedURL)
}
