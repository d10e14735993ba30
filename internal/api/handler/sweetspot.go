package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/kontenflow/kontenflow-api/internal/domain"
	"github.com/kontenflow/kontenflow-api/internal/usecases/sweetspot"
	"github.com/kontenflow/kontenflow-api/pkg/apiErrors"
)

func ListSweetSpotEntries(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.ListEntries()
		if err != nil {
			logrus.Error("Erro ao listar entradas do sweet spot:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar entradas no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(entries); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetSweetSpotEntry(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada é obrigatório", nil)
			return
		}

		entry, err := service.GetEntry(id)
		if err != nil {
			writeSweetSpotError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateSweetSpotEntry(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateSweetSpotEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		entry, err := service.CreateEntry(&createRequest)
		if err != nil {
			logrus.Error("Erro ao criar entrada do sweet spot:", err)
			writeSweetSpotError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateSweetSpotEntry(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateSweetSpotEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		entry, err := service.UpdateEntry(id, &updateRequest)
		if err != nil {
			logrus.Error("Erro ao atualizar entrada do sweet spot:", err)
			writeSweetSpotError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteSweetSpotEntry(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada é obrigatório", nil)
			return
		}

		if err := service.DeleteEntry(id); err != nil {
			logrus.Error("Erro ao remover entrada do sweet spot:", err)
			writeSweetSpotError(w, err)
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

// GetSweetSpotSettings retorna o registro de configuração, criando o
// registro padrão na primeira consulta
func GetSweetSpotSettings(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetSettings()
		if err != nil {
			logrus.Error("Erro ao buscar configuração do sweet spot:", err)
			writeSweetSpotError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateSweetSpotSettings(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var updateRequest domain.UpdateSweetSpotSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		settings, err := service.UpdateSettings(&updateRequest)
		if err != nil {
			logrus.Error("Erro ao atualizar configuração do sweet spot:", err)
			writeSweetSpotError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetSweetSpotAnalysis roda a projeção sobre as entradas cadastradas
func GetSweetSpotAnalysis(service sweetspot.SweetSpotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		analysis, err := service.Analyze()
		if err != nil {
			logrus.Error("Erro ao calcular projeção do sweet spot:", err)
			writeSweetSpotError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeSweetSpotError traduz os erros do serviço do sweet spot para a
// resposta padronizada da API
func writeSweetSpotError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sweetspot.ErrEntryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSweetSpotEntryNotFound, "Entrada do sweet spot não encontrada", nil)

	case errors.Is(err, sweetspot.ErrNicheRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nicho é obrigatório", nil)

	case errors.Is(err, sweetspot.ErrAccountRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conta é obrigatória", nil)

	case errors.Is(err, sweetspot.ErrNegativeAudience):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Audiência não pode ser negativa", nil)

	case errors.Is(err, sweetspot.ErrNegativeTarget):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Meta de receita não pode ser negativa", nil)

	case errors.Is(err, sweetspot.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar dados do sweet spot no banco de dados", nil)

	case errors.Is(err, sweetspot.ErrGenerateID):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificadores únicos", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar sweet spot", nil)
	}
}
