package httpapi

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-orbit/internal/controller"
	"github.com/i474232898/weather-orbit/internal/weather"
)

var validate = validator.New()

// Deps are the collaborators the HTTP bridge drives.
type Deps struct {
	Session         *controller.Controller
	Weather         weather.Provider
	Places          weather.PlaceProvider
	SuggestionLimit int
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. Session routes
// forward one event to the controller and answer with the resulting view.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")
	s := deps.Session

	v1.Get("/state", func(c *fiber.Ctx) error {
		return c.JSON(s.State().View())
	})

	session := v1.Group("/session")

	session.Post("/input", func(c *fiber.Ctx) error {
		var req inputRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		s.OnInputChange(req.Text)
		return c.JSON(s.State().View())
	})

	session.Post("/key", func(c *fiber.Ctx) error {
		var req keyRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		s.OnKeyDown(controller.Key(req.Key))
		return c.JSON(s.State().View())
	})

	session.Post("/select", func(c *fiber.Ctx) error {
		var req selectRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		s.OnSelect(*req.Index)
		return c.JSON(s.State().View())
	})

	for path, action := range map[string]func(){
		"/submit": s.OnSubmit,
		"/focus":  s.OnFocus,
		"/blur":   s.OnBlur,
		"/reset":  s.OnReset,
		"/click":  s.OnClick,
	} {
		action := action
		session.Post(path, func(c *fiber.Ctx) error {
			action()
			return c.JSON(s.State().View())
		})
	}

	v1.Get("/history", func(c *fiber.Ctx) error {
		return c.JSON(s.State().View().History)
	})

	v1.Delete("/history", func(c *fiber.Ctx) error {
		s.ClearHistory()
		return c.JSON(s.State().View())
	})

	v1.Get("/places", func(c *fiber.Ctx) error {
		q := placesQuery{Text: c.Query("q")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		places, err := deps.Places.Lookup(c.UserContext(), q.Text, deps.SuggestionLimit)
		if err != nil {
			log.Printf("httpapi: place lookup failed for %q: %v", q.Text, err)
			return c.JSON([]string{})
		}
		return c.JSON(weather.Labels(places, deps.SuggestionLimit))
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q := cityQuery{City: c.Query("city")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := deps.Weather.Fetch(c.UserContext(), q.City)
		if err != nil {
			if errors.Is(err, weather.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, controller.NotFoundMessage)
			}
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}

		return c.JSON(fiber.Map{
			"snapshot":    snapshot,
			"period":      weather.PeriodOf(&snapshot),
			"imagePeriod": weather.ImagePeriodOf(&snapshot),
			"assetKey":    weather.AssetKey(&snapshot),
		})
	})
}

type inputRequest struct {
	Text string `json:"text" validate:"max=200"`
}

type keyRequest struct {
	Key string `json:"key" validate:"required,oneof=ArrowDown ArrowUp Enter Escape Backspace"`
}

type selectRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

type placesQuery struct {
	Text string `validate:"required,max=200"`
}

type cityQuery struct {
	City string `validate:"required,max=200"`
}

// bind parses a JSON body into req and validates it.
func bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
