package wehttp

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/weegigs/wee-counter-go/view"
	"github.com/weegigs/wee-counter-go/we"
)

// Document is what a browser host needs to paint a program: the fixed title
// and settings plus the view of the current state.
type Document struct {
	Title    string      `json:"title"`
	Settings any         `json:"settings,omitempty"`
	Revision we.Revision `json:"revision"`
	View     view.Node   `json:"view"`
}

type HandlerOption[S any] func(service *httpService[S])

func Logger[S any](log *zerolog.Logger) HandlerOption[S] {
	return func(service *httpService[S]) {
		service.log = log
	}
}

func Settings[S any](settings any) HandlerOption[S] {
	return func(service *httpService[S]) {
		service.settings = settings
	}
}

// MaxMessageBytes bounds the size of a posted message body.
func MaxMessageBytes[S any](limit int64) HandlerOption[S] {
	return func(service *httpService[S]) {
		service.limit = limit
	}
}

const defaultMaxMessageBytes = 1 << 20

func NewHandler[S any](program we.Program[S], render view.Render[S], title string, options ...HandlerOption[S]) http.Handler {
	service := &httpService[S]{
		program: program,
		render:  render,
		title:   title,
		encoder: NewResourceEncoder[S](),
		limit:   defaultMaxMessageBytes,
	}

	for _, option := range options {
		option(service)
	}

	if service.log == nil {
		service.log = &log.Logger
	}

	return otelhttp.NewHandler(service.routes(), "wee-counter-http")
}

type httpService[S any] struct {
	log      *zerolog.Logger
	program  we.Program[S]
	render   view.Render[S]
	title    string
	settings any
	encoder  EntityEncoder[S]
	limit    int64
}

func (service *httpService[S]) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/", service.getDocument())
	r.Method("GET", "/state", service.getState())
	r.Method("POST", "/messages", service.postMessage())
	r.Method("POST", "/press/{handle}", service.pressButton())

	return r
}

func (service *httpService[S]) document(entity we.Entity[S]) Document {
	return Document{
		Title:    service.title,
		Settings: service.settings,
		Revision: entity.Revision,
		View:     service.render(*entity.State),
	}
}

func (service *httpService[S]) getDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, err := service.program.Load(r.Context())
		if err != nil {
			service.log.Info().Err(err).Msg("failed to load state")
			http.Error(w, "failed to load state", http.StatusInternalServerError)
			return
		}

		service.respond(w, r, http.StatusOK, service.document(entity))
	}
}

func (service *httpService[S]) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, err := service.program.Load(r.Context())
		if err != nil {
			service.log.Info().Err(err).Msg("failed to load state")
			http.Error(w, "failed to load state", http.StatusInternalServerError)
			return
		}

		if err := service.encoder.Encode(w, r, &entity); err != nil {
			service.log.Info().Err(err).Msg("failed to encode state")
		}
	}
}

type messageRequest struct {
	Message we.MessageName `json:"message"`
	Payload any            `json:"payload,omitempty"`
}

func (service *httpService[S]) postMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, service.limit))
		if err != nil {
			if int64(len(body)) >= service.limit {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var request messageRequest
		if err := json.Unmarshal(body, &request); err != nil || request.Message == "" {
			service.log.Info().Err(err).Msg("failed to unmarshal message")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		payload := request.Payload
		if payload == nil {
			payload = map[string]any{}
		}

		message, err := we.NewRemoteMessage(request.Message, payload)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		service.dispatch(w, r, message)
	}
}

func (service *httpService[S]) pressButton() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle := view.Handle(chi.URLParam(r, "handle"))

		entity, err := service.program.Load(r.Context())
		if err != nil {
			service.log.Info().Err(err).Msg("failed to load state")
			http.Error(w, "failed to load state", http.StatusInternalServerError)
			return
		}

		node, ok := view.Find(service.render(*entity.State), handle)
		if !ok {
			http.NotFound(w, r)
			return
		}

		message, err := node.Pressed()
		if err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		service.dispatch(w, r, message)
	}
}

func (service *httpService[S]) dispatch(w http.ResponseWriter, r *http.Request, message we.RemoteMessage) {
	entity, err := service.program.Dispatch(r.Context(), message)
	if err != nil {
		var notFound we.MessageNotFoundError
		var invalid we.InvalidMessageError

		switch {
		case errors.As(err, &notFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.As(err, &invalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			service.log.Info().Err(err).Str("name", message.Message.String()).Msg("failed to dispatch message")
			http.Error(w, "failed to dispatch message", http.StatusInternalServerError)
		}
		return
	}

	service.respond(w, r, http.StatusOK, service.document(entity))
}

func (service *httpService[S]) respond(w http.ResponseWriter, r *http.Request, status int, value any) {
	body, err := json.MarshalContext(r.Context(), value)
	if err != nil {
		service.log.Info().Err(err).Msg("failed to encode response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		service.log.Debug().Err(err).Msg("failed to write response")
	}
}
