package model

// Config 对应于 config.yaml 的顶级结构
type Config struct {
	Token   string  `mapstructure:"TOKEN" validate:"required"`
	GuildID string  `mapstructure:"guild_id" validate:"required"`
	Suggest Suggest `mapstructure:"suggest" validate:"required"`
}

// Suggest 对应 "suggest" 部分
type Suggest struct {
	// IntakeChannelID restricts in-guild intake to one channel.
	// Empty means the bot only accepts submissions via direct message.
	IntakeChannelID    string `mapstructure:"intake_channel_id"`
	ReviewChannelID    string `mapstructure:"review_channel_id" validate:"required"`
	PublishChannelID   string `mapstructure:"publish_channel_id" validate:"required"`
	DatabasePath       string `mapstructure:"database_path"`
	DeadLetterCapacity int    `mapstructure:"dead_letter_capacity" validate:"gt=0"`
}
