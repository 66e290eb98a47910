package server

import (
	"warehouse-portal/domain"

	"github.com/gin-gonic/gin"
)

// Every admin action re-renders the listing it changed.

func (s *Server) renderGroups(c *gin.Context, err error, success string) {
	groups, listErr := s.services.Groups.ListGroups(c.Request.Context(), principalFrom(c).TenantID)
	if err == nil {
		err = listErr
	}
	s.render(c, ViewGroups, err, success, groups)
}

func (s *Server) ListGroups(c *gin.Context) {
	s.renderGroups(c, nil, "")
}

type groupRequest struct {
	Name    string `json:"name"`
	NewName string `json:"new_name"`
	Message string `json:"message"`
}

func (s *Server) AddGroup(c *gin.Context) {
	var req groupRequest
	err := bindJSON(c, &req)
	if err == nil {
		err = s.services.Groups.AddGroup(c.Request.Context(), principalFrom(c).TenantID, req.Name, req.Message)
	}
	s.renderGroups(c, err, "Successfully added group")
}

func (s *Server) RenameGroup(c *gin.Context) {
	var req groupRequest
	err := bindJSON(c, &req)
	if err == nil {
		_, err = s.services.Groups.RenameGroup(c.Request.Context(), domain.RenameGroupCommand{
			TenantID: principalFrom(c).TenantID,
			OldName:  c.Param("name"),
			NewName:  req.NewName,
		})
	}
	s.renderGroups(c, err, "Successfully renamed group")
}

func (s *Server) EditGroupMessage(c *gin.Context) {
	var req groupRequest
	err := bindJSON(c, &req)
	if err == nil {
		err = s.services.Groups.EditGroupMessage(c.Request.Context(), principalFrom(c).TenantID, c.Param("name"), req.Message)
	}
	s.renderGroups(c, err, "Successfully edited group")
}

func (s *Server) DeleteGroup(c *gin.Context) {
	_, err := s.services.Groups.DeleteGroup(c.Request.Context(), principalFrom(c).TenantID, c.Param("name"))
	s.renderGroups(c, err, "Successfully deleted group")
}

func (s *Server) renderColleagues(c *gin.Context, err error, success string) {
	colleagues, listErr := s.services.Colleagues.ListColleagues(c.Request.Context(), principalFrom(c).TenantID, c.Query("group"))
	if err == nil {
		err = listErr
	}
	s.render(c, ViewColleagues, err, success, colleagues)
}

func (s *Server) ListColleagues(c *gin.Context) {
	s.renderColleagues(c, nil, "")
}

type colleagueRequest struct {
	Address   string      `json:"address"`
	Group     string      `json:"group"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
}

func (s *Server) AddColleague(c *gin.Context) {
	var req colleagueRequest
	err := bindJSON(c, &req)
	if err == nil {
		err = s.services.Colleagues.AddColleague(c.Request.Context(), domain.AddColleagueCommand{
			TenantID:  principalFrom(c).TenantID,
			Address:   req.Address,
			Group:     req.Group,
			Password:  req.Password,
			Role:      req.Role,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
	}
	s.renderColleagues(c, err, "Successfully added colleague")
}

func (s *Server) EditColleague(c *gin.Context) {
	var req colleagueRequest
	err := bindJSON(c, &req)
	if err == nil {
		err = s.services.Colleagues.EditColleague(c.Request.Context(), domain.EditColleagueCommand{
			TenantID: principalFrom(c).TenantID,
			Address:  c.Param("address"),
			Group:    req.Group,
			Role:     req.Role,
		})
	}
	s.renderColleagues(c, err, "Successfully edited colleague")
}

func (s *Server) DeleteColleague(c *gin.Context) {
	err := s.services.Colleagues.DeleteColleague(c.Request.Context(), principalFrom(c).TenantID, c.Param("address"))
	s.renderColleagues(c, err, "Successfully deleted colleague")
}

func (s *Server) renderLicences(c *gin.Context, err error, success string) {
	licences, listErr := s.services.Licences.ListLicences(c.Request.Context(), principalFrom(c).TenantID)
	if err == nil {
		err = listErr
	}
	s.render(c, ViewLicences, err, success, licences)
}

func (s *Server) ListLicences(c *gin.Context) {
	s.renderLicences(c, nil, "")
}

type licenceRequest struct {
	Seats     int    `json:"seats"`
	ExpiresAt string `json:"expires_at"`
}

func (s *Server) AddLicence(c *gin.Context) {
	var req licenceRequest
	err := bindJSON(c, &req)
	if err == nil {
		_, err = s.services.Licences.AddLicence(c.Request.Context(), principalFrom(c).TenantID, req.Seats, req.ExpiresAt)
	}
	s.renderLicences(c, err, "Successfully added licence")
}

func (s *Server) DeleteLicence(c *gin.Context) {
	err := s.services.Licences.DeleteLicence(c.Request.Context(), principalFrom(c).TenantID, c.Param("key"))
	s.renderLicences(c, err, "Successfully deleted licence")
}

func (s *Server) renderDevices(c *gin.Context, err error, success string) {
	devices, listErr := s.services.Devices.ListDevices(c.Request.Context(), principalFrom(c).TenantID)
	if err == nil {
		err = listErr
	}
	s.render(c, ViewDevices, err, success, devices)
}

func (s *Server) ListDevices(c *gin.Context) {
	s.renderDevices(c, nil, "")
}

type deviceRequest struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

func (s *Server) AddDevice(c *gin.Context) {
	var req deviceRequest
	err := bindJSON(c, &req)
	if err == nil {
		_, err = s.services.Devices.AddDevice(c.Request.Context(), principalFrom(c).TenantID, req.Label)
	}
	s.renderDevices(c, err, "Successfully added device")
}

func (s *Server) AssignDevice(c *gin.Context) {
	var req deviceRequest
	err := bindJSON(c, &req)
	if err == nil {
		err = s.services.Devices.AssignDevice(c.Request.Context(), principalFrom(c).TenantID, c.Param("id"), req.Address)
	}
	s.renderDevices(c, err, "Successfully assigned device")
}

func (s *Server) DeleteDevice(c *gin.Context) {
	err := s.services.Devices.DeleteDevice(c.Request.Context(), principalFrom(c).TenantID, c.Param("id"))
	s.renderDevices(c, err, "Successfully deleted device")
}
