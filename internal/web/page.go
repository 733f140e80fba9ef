package web

import (
	"fmt"
	"time"

	"ulascansenturk/weather-lookup/internal/tiles"
	"ulascansenturk/weather-lookup/internal/view"
)

const forecastDateLayout = "2/1/2006"

type currentCard struct {
	Name        string
	Icon        string
	Description string
	Temp        float64
	Humidity    int
	WindSpeed   float64
	Rain        string
}

type forecastCard struct {
	Date        string
	Icon        string
	Description string
	Temp        float64
}

type pageData struct {
	Query    string
	Error    string
	Current  *currentCard
	Forecast []forecastCard
	Map      *tiles.MapView
	Layers   []tiles.LayerOption
	Selected tiles.Layer
}

func (s *Server) buildPage(state view.State, loc *time.Location) pageData {
	data := pageData{
		Query:    state.Query,
		Error:    state.Error,
		Layers:   tiles.Layers(),
		Selected: state.Layer,
	}

	if state.Current != nil {
		condition := state.Current.Condition()
		card := &currentCard{
			Name:        state.Current.Name,
			Icon:        condition.Icon,
			Description: condition.Description,
			Temp:        state.Current.Main.Temp,
			Humidity:    state.Current.Main.Humidity,
			WindSpeed:   state.Current.Wind.Speed,
			Rain:        "N/A",
		}
		if rain, ok := state.Current.RainLastHour(); ok {
			card.Rain = fmt.Sprintf("%g mm", rain)
		}
		data.Current = card
	}

	if state.Forecast != nil {
		data.Forecast = make([]forecastCard, 0, len(state.Forecast))
		for _, entry := range state.Forecast {
			condition := entry.Condition()
			data.Forecast = append(data.Forecast, forecastCard{
				Date:        entry.Time().In(loc).Format(forecastDateLayout),
				Icon:        condition.Icon,
				Description: condition.Description,
				Temp:        entry.Main.Temp,
			})
		}
	}

	if mapView, ok := state.Map(s.tileAPIKey); ok {
		data.Map = &mapView
	}

	return data
}
