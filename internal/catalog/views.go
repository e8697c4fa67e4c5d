package catalog

import "github.com/averyhollis/stockroom-backend/pkg/db/models"

type ItemTypeView struct {
	Name string `json:"name"`
}

type LocationView struct {
	ID         int64  `json:"id"`
	BuildingID int64  `json:"building_id"`
	Name       string `json:"name"`
}

type BuildingView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func ItemTypeViews(rows []models.ItemType) []ItemTypeView {
	views := make([]ItemTypeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ItemTypeView{Name: row.Name})
	}
	return views
}

func LocationViews(rows []models.Location) []LocationView {
	views := make([]LocationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, LocationView{ID: row.ID, BuildingID: row.BuildingID, Name: row.Name})
	}
	return views
}

func BuildingViews(rows []models.Building) []BuildingView {
	views := make([]BuildingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, BuildingView{ID: row.ID, Name: row.Name, Address: row.Address})
	}
	return views
}
