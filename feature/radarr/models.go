package radarr

import "time"

// Movie mirrors the columns of Radarr's Movies table this package reads.
type Movie struct {
	ID              int    `gorm:"primaryKey;column:Id"`
	Path            string `gorm:"column:Path"`
	MovieFileID     int    `gorm:"column:MovieFileId"`
	MovieMetadataID int    `gorm:"column:MovieMetadataId"`
}

func (Movie) TableName() string { return "Movies" }

// MovieFile mirrors Radarr's MovieFiles table.
type MovieFile struct {
	ID           int       `gorm:"primaryKey;column:Id"`
	MovieID      int       `gorm:"column:MovieId"`
	RelativePath string    `gorm:"column:RelativePath"`
	SceneName    *string   `gorm:"column:SceneName"`
	Size         int64     `gorm:"column:Size"`
	DateAdded    time.Time `gorm:"column:DateAdded"`
}

func (MovieFile) TableName() string { return "MovieFiles" }

// MovieMetadata mirrors Radarr's MovieMetadata table.
type MovieMetadata struct {
	ID    int    `gorm:"primaryKey;column:Id"`
	Title string `gorm:"column:Title"`
}

func (MovieMetadata) TableName() string { return "MovieMetadata" }

// RequiredColumns lists, per table, the columns DBSource queries.
var RequiredColumns = map[string][]string{
	"Movies":        {"Id", "Path", "MovieFileId", "MovieMetadataId"},
	"MovieFiles":    {"Id", "RelativePath", "SceneName", "Size", "DateAdded"},
	"MovieMetadata": {"Id", "Title"},
}
