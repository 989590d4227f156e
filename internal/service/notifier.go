package service

// Notifier pushes operational events to an external channel (Telegram in
// the default wiring). A nil Notifier disables notifications.
type Notifier interface {
	NotifyNewJob(jobName, companyName string)
	NotifyNewResume(applicantEmail, jobName string)
}
