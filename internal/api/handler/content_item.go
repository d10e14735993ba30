package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/kontenflow/kontenflow-api/internal/domain"
	"github.com/kontenflow/kontenflow-api/internal/usecases/content"
	"github.com/kontenflow/kontenflow-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ListContentItems(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := &domain.ContentListFilters{}

		if filterStatus := r.URL.Query().Get("status"); filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				filters.Statuses = append(filters.Statuses, domain.ContentStatus(status))
			}
		}

		if filterPlatform := r.URL.Query().Get("platform"); filterPlatform != "" {
			filters.Platforms = strings.Split(filterPlatform, ",")
		}

		items, err := service.ListItems(filters)
		if err != nil {
			logrus.Error("Erro ao listar conteúdos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar conteúdos no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(items); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetContentItem(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conteúdo é obrigatório", nil)
			return
		}

		item, err := service.GetItem(id)
		if err != nil {
			writeContentError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateContentItem(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateContentItemRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		item, err := service.CreateItem(&createRequest)
		if err != nil {
			logrus.Error("Erro ao criar conteúdo:", err)
			writeContentError(w, err, "")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateContentItem(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conteúdo é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateContentItemRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		item, err := service.UpdateItem(r.Context(), id, &updateRequest)
		if err != nil {
			logrus.Error("Erro ao atualizar conteúdo:", err)
			writeContentError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteContentItem(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conteúdo é obrigatório", nil)
			return
		}

		if err := service.DeleteItem(id); err != nil {
			logrus.Error("Erro ao remover conteúdo:", err)
			writeContentError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"deleted": true,
			"id":      id,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeContentError traduz os erros do serviço de conteúdo para a resposta
// padronizada da API
func writeContentError(w http.ResponseWriter, err error, id string) {
	var contentErr *content.ContentError
	if errors.As(err, &contentErr) && contentErr.Code != "" {
		apiErrors.WriteError(w, contentErr.Code, contentErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, content.ErrContentNotFound):
		var details any
		if id != "" {
			details = map[string]any{"content_id": id}
		}
		apiErrors.WriteError(w, apiErrors.ErrContentNotFound, "Conteúdo não encontrado", details)

	case errors.Is(err, content.ErrTitleRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título é obrigatório", nil)

	case errors.Is(err, content.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de conteúdo inválido", nil)

	case errors.Is(err, content.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar conteúdos no banco de dados", nil)

	case errors.Is(err, content.ErrGenerateID):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificadores únicos", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar conteúdo", nil)
	}
}
