package handler

import "github.com/damon-houk/currency-converter/internal/domain/entity"

// Action names recorded in the user_actions_total metric
const (
	ActionConvert      = "convert"
	ActionConvertAll   = "convert_all"
	ActionShowTrend    = "show_trend"
	ActionSaveFavorite = "save_favorite"
	ActionLoadFavorite = "load_favorite"
	ActionExport       = "export"
)

// CurrenciesResponse is the currency catalog
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// ConversionResponse is a single-pair conversion
type ConversionResponse struct {
	Base            string  `json:"base"`
	Target          string  `json:"target"`
	Amount          float64 `json:"amount"`
	Rate            float64 `json:"rate"`
	Converted       float64 `json:"converted"`
	ConvertedAmount string  `json:"converted_amount"`
	Summary         string  `json:"summary"`
	Date            string  `json:"date"`
}

// TableRowResponse is one line of the conversion table
type TableRowResponse struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Display  string  `json:"display"`
}

// TableResponse is the multi-currency conversion table
type TableResponse struct {
	Base   string             `json:"base"`
	Amount float64            `json:"amount"`
	Date   string             `json:"date"`
	Rows   []TableRowResponse `json:"rows"`
}

func newTableResponse(table *entity.ConversionTable) TableResponse {
	rows := make([]TableRowResponse, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, TableRowResponse{
			Currency: row.Currency,
			Amount:   row.Amount,
			Display:  entity.FormatAmount(row.Amount),
		})
	}

	return TableResponse{
		Base:   table.Base,
		Amount: table.Amount,
		Date:   table.Date,
		Rows:   rows,
	}
}

// TrendResponse is a date-ordered rate series
type TrendResponse struct {
	Title     string              `json:"title"`
	Base      string              `json:"base"`
	Target    string              `json:"target"`
	Days      int                 `json:"days"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Points    []entity.TrendPoint `json:"points"`
}

// SaveFavoriteRequest is the body of POST /favorites
type SaveFavoriteRequest struct {
	Base   string `json:"base"`
	Target string `json:"target"`
}

// FavoriteResponse is a saved pair
type FavoriteResponse struct {
	Pair   string `json:"pair"`
	Base   string `json:"base"`
	Target string `json:"target"`
	Added  bool   `json:"added,omitempty"`
}

// FavoritesResponse lists the saved pairs in save order
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}
