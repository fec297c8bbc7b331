package config

// Config holds all application configuration.
// It is constructed once at startup and passed down explicitly to the
// pipeline components; nothing below the entry point reads the process
// environment directly.
type Config struct {
	Server              ServerConfig              `mapstructure:"server" validate:"required"`
	Database            DatabaseConfig            `mapstructure:"database" validate:"required"`
	Reminder            ReminderConfig            `mapstructure:"reminder" validate:"required"`
	NotificationService NotificationServiceConfig `mapstructure:"notification_service"`
	TaskService         TaskServiceConfig         `mapstructure:"task_service"`
	SMTP                SMTPConfig                `mapstructure:"smtp"`
}

// ServerConfig contains the HTTP trigger surface settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains task-store connection settings.
// The database URL is the one piece of configuration without which an
// invocation cannot even select tasks, so it is validated as required.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// ReminderConfig selects the due-marker granularity.
// Daily mode reminds about tasks due on the next calendar date; hourly mode
// reminds about tasks due in the current clock hour.
type ReminderConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=daily hourly"`
}

// NotificationServiceConfig points at the notification microservice.
// An empty URL is not a startup error: the record-creation step is skipped
// per task with a logged error instead.
type NotificationServiceConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// TaskServiceConfig points at the task microservice GraphQL endpoint.
// Both URL and APIKey must be present for the flag-update step to run;
// otherwise that step is skipped per task with a logged error.
type TaskServiceConfig struct {
	URL    string `mapstructure:"url" validate:"omitempty,url"`
	APIKey string `mapstructure:"api_key"`
}

// SMTPConfig contains sender credentials for the email channel.
// Host and From must be present for email delivery to be attempted.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,gt=0,lt=65536"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
}

// HasNotificationService reports whether the record-creation step is configured.
func (c *Config) HasNotificationService() bool {
	return c.NotificationService.URL != ""
}

// HasTaskService reports whether the flag-update step is configured.
func (c *Config) HasTaskService() bool {
	return c.TaskService.URL != "" && c.TaskService.APIKey != ""
}

// HasSMTP reports whether the email step is configured.
func (c *Config) HasSMTP() bool {
	return c.SMTP.Host != "" && c.SMTP.From != ""
}
