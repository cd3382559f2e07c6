package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sgkim-dev/contract-desk/internal/model"
	"github.com/sgkim-dev/contract-desk/internal/repository"
	"github.com/sgkim-dev/contract-desk/internal/service"
	"github.com/sgkim-dev/contract-desk/internal/workflow"
)

type createContractRequest struct {
	Title            string  `json:"title" binding:"required"`
	Category         string  `json:"category"`
	Method           string  `json:"method"`
	Amount           int64   `json:"amount"`
	Budget           int64   `json:"budget"`
	Requester        *string `json:"requester"`
	RequesterContact *string `json:"requesterContact"`
	Contractor       *string `json:"contractor"`
	Deadline         string  `json:"deadline"`
	RequestDate      string  `json:"requestDate"`
	ContractStart    string  `json:"contractStart"`
	ContractEnd      string  `json:"contractEnd"`
}

func (h *Handler) createContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	input := service.CreateInput{
		Title:            req.Title,
		Amount:           req.Amount,
		Budget:           req.Budget,
		Requester:        req.Requester,
		RequesterContact: req.RequesterContact,
		Contractor:       req.Contractor,
	}

	var err error
	if input.Category, err = parseCategory(req.Category); err != nil {
		h.handleError(c, err)
		return
	}
	if input.Method, err = parseMethod(req.Method); err != nil {
		h.handleError(c, err)
		return
	}
	if input.Deadline, err = parseDate(req.Deadline); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: deadline")
		return
	}
	if input.RequestDate, err = parseDate(req.RequestDate); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: requestDate")
		return
	}
	if input.ContractStart, err = parseDate(req.ContractStart); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: contractStart")
		return
	}
	if input.ContractEnd, err = parseDate(req.ContractEnd); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: contractEnd")
		return
	}

	contract, err := h.contracts.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *Handler) listContracts(c *gin.Context) {
	filter := repository.ListFilter{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}

	if raw := c.Query("status"); raw != "" {
		status := model.Status(raw)
		if !validStatus(status) {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 상태입니다: "+raw)
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("category"); raw != "" {
		category, err := parseCategory(raw)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.Category = &category
	}
	if raw := c.Query("method"); raw != "" {
		method, err := parseMethod(raw)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.Method = &method
	}
	if raw := c.Query("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}
	if raw := c.Query("offset"); raw != "" {
		filter.Offset, _ = strconv.Atoi(raw)
	}

	contracts, total, err := h.contracts.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]contractListItem, len(contracts))
	for i, contract := range contracts {
		items[i] = contractListItem{
			Contract: contract,
			Progress: workflow.Progress(contract.Method, contract.Stage),
		}
	}
	c.JSON(http.StatusOK, gin.H{"contracts": items, "total": total})
}

type contractListItem struct {
	model.Contract
	Progress int `json:"progress"`
}

func (h *Handler) getContract(c *gin.Context) {
	detail, err := h.contracts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

type updateContractRequest struct {
	Title             *string `json:"title"`
	Category          *string `json:"category"`
	Method            *string `json:"method"`
	Amount            *int64  `json:"amount"`
	Budget            *int64  `json:"budget"`
	ContractAmount    *int64  `json:"contractAmount"`
	ExecutionAmount   *int64  `json:"executionAmount"`
	Stage             *string `json:"stage"`
	Status            *string `json:"status"`
	Requester         *string `json:"requester"`
	RequesterContact  *string `json:"requesterContact"`
	Contractor        *string `json:"contractor"`
	Deadline          *string `json:"deadline"`
	RequestDate       *string `json:"requestDate"`
	AnnouncementStart *string `json:"announcementStart"`
	AnnouncementEnd   *string `json:"announcementEnd"`
	OpeningDate       *string `json:"openingDate"`
	ContractStart     *string `json:"contractStart"`
	ContractEnd       *string `json:"contractEnd"`
	PaymentDate       *string `json:"paymentDate"`
}

func (h *Handler) updateContract(c *gin.Context) {
	var req updateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	input := service.UpdateInput{
		Title:            req.Title,
		Amount:           req.Amount,
		Budget:           req.Budget,
		ContractAmount:   req.ContractAmount,
		ExecutionAmount:  req.ExecutionAmount,
		Stage:            req.Stage,
		Requester:        req.Requester,
		RequesterContact: req.RequesterContact,
		Contractor:       req.Contractor,
	}

	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			h.handleError(c, err)
			return
		}
		input.Category = &category
	}
	if req.Method != nil {
		method, err := parseMethod(*req.Method)
		if err != nil {
			h.handleError(c, err)
			return
		}
		input.Method = &method
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		if !validStatus(status) {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 상태입니다: "+*req.Status)
			return
		}
		input.Status = &status
	}

	var err error
	if input.Deadline, err = parseOptionalDate(req.Deadline); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: deadline")
		return
	}
	if input.RequestDate, err = parseOptionalDate(req.RequestDate); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: requestDate")
		return
	}
	if input.AnnouncementStart, err = parseOptionalDate(req.AnnouncementStart); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: announcementStart")
		return
	}
	if input.AnnouncementEnd, err = parseOptionalDate(req.AnnouncementEnd); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: announcementEnd")
		return
	}
	if input.OpeningDate, err = parseOptionalDate(req.OpeningDate); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: openingDate")
		return
	}
	if input.ContractStart, err = parseOptionalDate(req.ContractStart); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: contractStart")
		return
	}
	if input.ContractEnd, err = parseOptionalDate(req.ContractEnd); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: contractEnd")
		return
	}
	if input.PaymentDate, err = parseOptionalDate(req.PaymentDate); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "유효하지 않은 날짜입니다: paymentDate")
		return
	}

	contract, err := h.contracts.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, service.ErrNoChanges) {
			detail, getErr := h.contracts.Get(c.Request.Context(), c.Param("id"))
			if getErr != nil {
				h.handleError(c, getErr)
				return
			}
			c.JSON(http.StatusOK, detail.Contract)
			return
		}
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) deleteContract(c *gin.Context) {
	if err := h.contracts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type addNoteRequest struct {
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

func (h *Handler) addNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.contracts.AddNote(c.Request.Context(), c.Param("id"), req.Content, req.Tags)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *Handler) listNotes(c *gin.Context) {
	notes, err := h.contracts.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func parseCategory(raw string) (model.Category, error) {
	if raw == "" {
		return "", nil
	}
	category := model.Category(raw)
	switch category {
	case model.CategoryGoodsPurchase, model.CategoryGoodsManufacture, model.CategoryService, model.CategoryConstruction:
		return category, nil
	}
	return "", fmt.Errorf("%w: 유효하지 않은 계약종류입니다: %s", service.ErrInvalidInput, raw)
}

func parseMethod(raw string) (model.Method, error) {
	if raw == "" {
		return "", nil
	}
	method := model.Method(raw)
	switch method {
	case model.MethodOpenBid, model.MethodRestrictedBid, model.MethodNominatedBid,
		model.MethodOpenNegotiation, model.MethodPrivateNegotiation:
		return method, nil
	}
	return "", fmt.Errorf("%w: 유효하지 않은 계약방식입니다: %s", service.ErrInvalidInput, raw)
}

func validStatus(status model.Status) bool {
	for _, s := range model.LiveStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	return parseDate(*raw)
}
