package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

func (mc *MemberController) Create(c *gin.Context) {
	var req request_models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := mc.memberService.CreateMember(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member created successfully")
}

func (mc *MemberController) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 1000 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-1000)")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid offset")
		return
	}

	members, err := mc.memberService.ListMembers(c.Request.Context(), identityFrom(c), limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

func (mc *MemberController) Get(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	member, err := mc.memberService.GetMember(c.Request.Context(), identityFrom(c), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member fetched successfully")
}

// Search filters the roster by name substring or exact gender; both are
// admin-only views.
func (mc *MemberController) Search(c *gin.Context) {
	name := c.Query("name")
	gender := c.Query("gender")

	if name == "" && gender == "" {
		utils.RespondError(c, http.StatusBadRequest, "Provide a name or gender filter")
		return
	}

	ctx := c.Request.Context()
	identity := identityFrom(c)

	if name != "" {
		members, err := mc.memberService.SearchMembersByName(ctx, identity, name)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, members, "Members fetched successfully")
		return
	}

	members, err := mc.memberService.FindMembersByGender(ctx, identity, gender)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, members, "Members fetched successfully")
}

func (mc *MemberController) Update(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req request_models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := mc.memberService.UpdateMember(c.Request.Context(), identityFrom(c), memberID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member updated successfully")
}

func (mc *MemberController) Delete(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := mc.memberService.DeleteMember(c.Request.Context(), identityFrom(c), memberID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member deleted successfully")
}
