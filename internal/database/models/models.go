package models

import (
	"time"
)

// ListeningEvent represents one playback record from an extended streaming
// history export. Pointer fields are nullable both in the export JSON and in
// the database; podcast episodes carry the episode_* fields and leave the
// track fields null.
type ListeningEvent struct {
	TS                 time.Time `json:"ts" db:"ts"`
	Username           *string   `json:"username" db:"username"`
	Platform           *string   `json:"platform" db:"platform"`
	ConnCountry        *string   `json:"conn_country" db:"conn_country"`
	IPAddrDecrypted    *string   `json:"ip_addr_decrypted" db:"ip_addr_decrypted"`
	UserAgentDecrypted *string   `json:"user_agent_decrypted" db:"user_agent_decrypted"`
	MsPlayed           uint64    `json:"ms_played" db:"ms_played"`
	TrackName          *string   `json:"track_name" db:"track_name"`
	AlbumArtistName    *string   `json:"album_artist_name" db:"album_artist_name"`
	AlbumName          *string   `json:"album_name" db:"album_name"`
	TrackURI           *string   `json:"track_uri" db:"track_uri"`
	EpisodeName        *string   `json:"episode_name" db:"episode_name"`
	EpisodeShowName    *string   `json:"episode_show_name" db:"episode_show_name"`
	EpisodeURI         *string   `json:"episode_uri" db:"episode_uri"`
	ReasonStart        *string   `json:"reason_start" db:"reason_start"`
	ReasonEnd          *string   `json:"reason_end" db:"reason_end"`
	Shuffle            *bool     `json:"shuffle" db:"shuffle"`
	Skipped            *bool     `json:"skipped" db:"skipped"`
	Offline            *bool     `json:"offline" db:"offline"`
	IncognitoMode      *bool     `json:"incognito_mode" db:"incognito_mode"`
	OfflineTimestamp   *uint64   `json:"offline_timestamp" db:"offline_timestamp"`
}
