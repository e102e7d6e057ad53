package models

import (
	"time"
)

type VerdictStat struct {
	Entity   string    `json:"entity" gorm:"primaryKey;type:text"`
	Accepted int64     `json:"accepted" gorm:"type:bigint;not null;default:0"`
	Rejected int64     `json:"rejected" gorm:"type:bigint;not null;default:0"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate    time.Time `json:"mdate" gorm:"autoUpdateTime"`
}
