package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/middlewares"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/sbilibin2017/cats-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func sampleCat(owner models.UserOutput) *models.Cat {
	return &models.Cat{
		CatID:    uuid.New(),
		CatName:  "Tom",
		Location: models.NewPoint(24.93545, 60.16952),
		Owner:    owner,
	}
}

func TestListCatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserOutput{UserID: uuid.New(), UserName: "john", Email: "john@example.com"}
	cat := sampleCat(owner)

	mockSvc := NewMockCatLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]*models.Cat{cat}, nil)

	rr := httptest.NewRecorder()
	NewListCatsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/cats", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, map[string]any{"type": "Point", "coordinates": []any{24.93545, 60.16952}}, resp[0]["location"])
	assert.Equal(t, map[string]any{"_id": owner.UserID.String(), "user_name": "john", "email": "john@example.com"}, resp[0]["owner"])
}

func TestListCatsHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCatLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]*models.Cat{}, nil)

	rr := httptest.NewRecorder()
	NewListCatsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/cats", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetCatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name            string
		param           string
		mockSetup       func(m *MockCatGetter)
		expectedCode    int
		expectedMessage string
	}{
		{
			name:  "found",
			param: id.String(),
			mockSetup: func(m *MockCatGetter) {
				m.EXPECT().GetByID(gomock.Any(), id).Return(&models.Cat{CatID: id, CatName: "Tom"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "missing",
			param: id.String(),
			mockSetup: func(m *MockCatGetter) {
				m.EXPECT().GetByID(gomock.Any(), id).Return(nil, &services.Error{Kind: services.ErrNotFound, Message: "Cat not found"})
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Cat not found",
		},
		{
			name:            "malformed id",
			param:           "42",
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Cat not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCatGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/cats/"+tt.param, nil), "id", tt.param)
			rr := httptest.NewRecorder()
			NewGetCatHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeBody(t, rr)["message"])
			}
		})
	}
}

func TestListCatsInAreaHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCatAreaFinder(ctrl)
	gomock.InOrder(
		mockSvc.EXPECT().ListByBoundingBox(gomock.Any(), "61,25", "60,24").Return([]*models.Cat{}, nil),
		mockSvc.EXPECT().ListByBoundingBox(gomock.Any(), "", "60,24").
			Return(nil, &services.Error{Kind: services.ErrInvalidInput, Message: "topRight and bottomLeft are required"}),
	)

	rr := httptest.NewRecorder()
	NewListCatsInAreaHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/cats/area?topRight=61,25&bottomLeft=60,24", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	NewListCatsInAreaHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/cats/area?bottomLeft=60,24", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "topRight and bottomLeft are required", decodeBody(t, rr)["message"])
}

func TestListOwnCatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := &models.Actor{ID: uuid.New()}
	mockSvc := NewMockCatOwnerLister(ctrl)
	mockSvc.EXPECT().ListByOwner(gomock.Any(), actor).Return([]*models.Cat{}, nil)

	rr := httptest.NewRecorder()
	NewListOwnCatsHandler(mockSvc)(rr, withActor(httptest.NewRequest(http.MethodGet, "/cats/user", nil), actor))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateCatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := &models.Actor{ID: uuid.New(), UserName: "john"}
	defaultLoc := models.NewPoint(25, 60)

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockCatCreator)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success with default location",
			body: `{"cat_name":"Tom","weight":4.2}`,
			mockSetup: func(m *MockCatCreator) {
				m.EXPECT().Create(gomock.Any(), actor, gomock.Any(), defaultLoc).
					DoAndReturn(func(_ context.Context, _ *models.Actor, input models.CatInput, loc *models.Location) (*models.Cat, error) {
						assert.Equal(t, "Tom", input.CatName)
						assert.Equal(t, 4.2, *input.Weight)
						assert.Nil(t, input.Location)
						return &models.Cat{CatID: uuid.New(), CatName: input.CatName, Location: loc, Owner: actor.Output()}, nil
					})
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "Cat created",
		},
		{
			name:            "missing name",
			body:            `{"weight":4.2}`,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "cat_name is required",
		},
		{
			name:            "birthdate in the future",
			body:            `{"cat_name":"Tom","birthdate":"2999-01-01T00:00:00Z"}`,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "birthdate must not be in the future",
		},
		{
			name:            "wrong geometry",
			body:            `{"cat_name":"Tom","location":{"type":"Polygon","coordinates":[1,2]}}`,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "type must be Point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCatCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/cats", bytes.NewBufferString(tt.body))
			req = withActor(req, actor)
			req = req.WithContext(middlewares.WithLocation(req.Context(), defaultLoc))
			rr := httptest.NewRecorder()
			NewCreateCatHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			assert.Equal(t, tt.expectedMessage, resp["message"])
			if tt.expectedCode == http.StatusCreated {
				data := resp["data"].(map[string]any)
				assert.Equal(t, map[string]any{"type": "Point", "coordinates": []any{float64(25), float64(60)}}, data["location"])
			}
		})
	}
}

func TestUpdateCatHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	newOwner := uuid.New()
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleUser}
	body := `{"cat_name":"Garfield","owner":"` + newOwner.String() + `"}`
	name := "Garfield"
	expectedInput := models.CatUpdate{CatName: &name, Owner: &newOwner}

	t.Run("owner entry point", func(t *testing.T) {
		mockSvc := NewMockCatUpdater(ctrl)
		mockSvc.EXPECT().Update(gomock.Any(), actor, id, expectedInput).
			Return(nil, &services.Error{Kind: services.ErrForbidden, Message: "Not allowed to modify this cat"})

		req := withActor(withURLParam(httptest.NewRequest(http.MethodPut, "/cats/"+id.String(), bytes.NewBufferString(body)), "id", id.String()), actor)
		rr := httptest.NewRecorder()
		NewUpdateCatHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin entry point", func(t *testing.T) {
		mockSvc := NewMockCatAdminUpdater(ctrl)
		mockSvc.EXPECT().UpdateAsAdmin(gomock.Any(), actor, id, expectedInput).
			Return(&models.Cat{CatID: id, CatName: name, Owner: models.UserOutput{UserID: newOwner}}, nil)

		req := withActor(withURLParam(httptest.NewRequest(http.MethodPut, "/cats/admin/"+id.String(), bytes.NewBufferString(body)), "id", id.String()), actor)
		rr := httptest.NewRecorder()
		NewAdminUpdateCatHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody(t, rr)
		assert.Equal(t, "Cat updated", resp["message"])
	})
}

func TestDeleteCatHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleUser}

	t.Run("owner entry point", func(t *testing.T) {
		mockSvc := NewMockCatDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), actor, id).
			Return(nil, &services.Error{Kind: services.ErrNotFound, Message: "Cat not found or not your cat"})

		req := withActor(withURLParam(httptest.NewRequest(http.MethodDelete, "/cats/"+id.String(), nil), "id", id.String()), actor)
		rr := httptest.NewRecorder()
		NewDeleteCatHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Cat not found or not your cat", decodeBody(t, rr)["message"])
	})

	t.Run("admin entry point", func(t *testing.T) {
		mockSvc := NewMockCatAdminDeleter(ctrl)
		mockSvc.EXPECT().DeleteAsAdmin(gomock.Any(), actor, id).
			Return(nil, &services.Error{Kind: services.ErrForbidden, Message: "Admin only"})

		req := withActor(withURLParam(httptest.NewRequest(http.MethodDelete, "/cats/admin/"+id.String(), nil), "id", id.String()), actor)
		rr := httptest.NewRecorder()
		NewAdminDeleteCatHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		mockSvc := NewMockCatDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), actor, id).Return(&models.Cat{CatID: id, CatName: "Tom"}, nil)

		req := withActor(withURLParam(httptest.NewRequest(http.MethodDelete, "/cats/"+id.String(), nil), "id", id.String()), actor)
		rr := httptest.NewRecorder()
		NewDeleteCatHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody(t, rr)
		assert.Equal(t, "Cat deleted", resp["message"])
		assert.Equal(t, id.String(), resp["data"].(map[string]any)["_id"])
	})
}
