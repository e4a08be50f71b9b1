package model

import (
	"hotel/shared/model"

	"gorm.io/datatypes"
)

const (
	TableName   = "virtual_tours"
	EntityName  = "virtual tour"
	EntityLabel = "Virtual tour"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldTitle        = "title"
	FieldTourType     = "tour_type"
	FieldTourURL      = "tour_url"
	FieldTourData     = "tour_data"
	FieldThumbnailURL = "thumbnail_url"
	FieldIsActive     = "is_active"
)

const (
	TourTypePanorama = "panorama"
	TourTypeVideo    = "video"
	TourTypeModel3D  = "3d"
)

type VirtualTour struct {
	ID           int64          `db:"id"            generated:"true"`
	RoomID       *int64         `db:"room_id"`
	Title        string         `db:"title"`
	Description  *string        `db:"description"`
	TourType     string         `db:"tour_type"`
	TourURL      string         `db:"tour_url"`
	TourData     datatypes.JSON `db:"tour_data"`
	ThumbnailURL *string        `db:"thumbnail_url"`
	IsActive     bool           `db:"is_active"`
	SortOrder    int            `db:"sort_order"`
	RoomName     *string        `db:"room_name"     table:"rooms" column:"name"`
	RoomSlug     *string        `db:"room_slug"     table:"rooms" column:"slug"`
	model.Metadata
}

func (VirtualTour) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = virtual_tours.room_id"
}
