package service

import (
	"sort"
	"strings"
	"time"

	"jobboard/internal/models"
)

// In-memory repository fakes used by the service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByRefreshTokenAndEmail(token, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.RefreshToken == token && token != "" {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	user, _ := r.GetByEmail(email)
	return user != nil, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return nil
	}
	stored.Name = user.Name
	stored.Age = user.Age
	stored.Gender = user.Gender
	stored.Address = user.Address
	stored.CompanyID = user.CompanyID
	stored.RoleID = user.RoleID
	stored.UpdatedBy = user.UpdatedBy
	stored.UpdatedAt = time.Now()
	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *fakeUserRepo) UpdateRefreshToken(email, token string) error {
	for _, user := range r.users {
		if user.Email == email {
			user.RefreshToken = token
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) DeleteByCompanyID(companyID int64) error {
	for id, user := range r.users {
		if user.CompanyID != nil && *user.CompanyID == companyID {
			delete(r.users, id)
		}
	}
	return nil
}

func (r *fakeUserRepo) List(nameFilter string, limit, offset int) ([]models.User, error) {
	users := []models.User{}
	for _, user := range r.users {
		if matchesName(user.Name, nameFilter) {
			users = append(users, *user)
		}
	}
	return page(users, func(u models.User) int64 { return u.ID }, limit, offset), nil
}

func (r *fakeUserRepo) Count(nameFilter string) (int64, error) {
	var count int64
	for _, user := range r.users {
		if matchesName(user.Name, nameFilter) {
			count++
		}
	}
	return count, nil
}

type fakeCompanyRepo struct {
	companies map[int64]*models.Company
	nextID    int64
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[int64]*models.Company{}}
}

func (r *fakeCompanyRepo) Create(company *models.Company) error {
	r.nextID++
	company.ID = r.nextID
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	copied := *company
	r.companies[company.ID] = &copied
	return nil
}

func (r *fakeCompanyRepo) GetByID(id int64) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	copied := *company
	return &copied, nil
}

func (r *fakeCompanyRepo) Update(company *models.Company) error {
	stored, ok := r.companies[company.ID]
	if !ok {
		return nil
	}
	*stored = *company
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCompanyRepo) Delete(id int64) error {
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) List(nameFilter string, limit, offset int) ([]models.Company, error) {
	companies := []models.Company{}
	for _, company := range r.companies {
		if matchesName(company.Name, nameFilter) {
			companies = append(companies, *company)
		}
	}
	return page(companies, func(c models.Company) int64 { return c.ID }, limit, offset), nil
}

func (r *fakeCompanyRepo) Count(nameFilter string) (int64, error) {
	var count int64
	for _, company := range r.companies {
		if matchesName(company.Name, nameFilter) {
			count++
		}
	}
	return count, nil
}

type fakeSkillRepo struct {
	skills map[int64]*models.Skill
	nextID int64
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[int64]*models.Skill{}}
}

func (r *fakeSkillRepo) Create(skill *models.Skill) error {
	r.nextID++
	skill.ID = r.nextID
	skill.CreatedAt = time.Now()
	skill.UpdatedAt = skill.CreatedAt
	copied := *skill
	r.skills[skill.ID] = &copied
	return nil
}

func (r *fakeSkillRepo) GetByID(id int64) (*models.Skill, error) {
	skill, ok := r.skills[id]
	if !ok {
		return nil, nil
	}
	copied := *skill
	return &copied, nil
}

func (r *fakeSkillRepo) ExistsByName(name string) (bool, error) {
	for _, skill := range r.skills {
		if skill.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSkillRepo) Update(skill *models.Skill) error {
	stored, ok := r.skills[skill.ID]
	if !ok {
		return nil
	}
	stored.Name = skill.Name
	stored.UpdatedBy = skill.UpdatedBy
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSkillRepo) Delete(id int64) error {
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) DetachFromJobs(skillID int64) error {
	return nil
}

func (r *fakeSkillRepo) List(nameFilter string, limit, offset int) ([]models.Skill, error) {
	skills := []models.Skill{}
	for _, skill := range r.skills {
		if matchesName(skill.Name, nameFilter) {
			skills = append(skills, *skill)
		}
	}
	return page(skills, func(s models.Skill) int64 { return s.ID }, limit, offset), nil
}

func (r *fakeSkillRepo) Count(nameFilter string) (int64, error) {
	var count int64
	for _, skill := range r.skills {
		if matchesName(skill.Name, nameFilter) {
			count++
		}
	}
	return count, nil
}

type fakeJobRepo struct {
	jobs      map[int64]*models.Job
	jobSkills map[int64][]int64
	skillRepo *fakeSkillRepo
	nextID    int64
}

func newFakeJobRepo(skillRepo *fakeSkillRepo) *fakeJobRepo {
	return &fakeJobRepo{
		jobs:      map[int64]*models.Job{},
		jobSkills: map[int64][]int64{},
		skillRepo: skillRepo,
	}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) GetByID(id int64) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	stored, ok := r.jobs[job.ID]
	if !ok {
		return nil
	}
	*stored = *job
	stored.UpdatedAt = time.Now()
	job.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *fakeJobRepo) Delete(id int64) error {
	delete(r.jobs, id)
	delete(r.jobSkills, id)
	return nil
}

func (r *fakeJobRepo) List(nameFilter string, limit, offset int) ([]models.Job, error) {
	jobs := []models.Job{}
	for _, job := range r.jobs {
		if matchesName(job.Name, nameFilter) {
			jobs = append(jobs, *job)
		}
	}
	return page(jobs, func(j models.Job) int64 { return j.ID }, limit, offset), nil
}

func (r *fakeJobRepo) Count(nameFilter string) (int64, error) {
	var count int64
	for _, job := range r.jobs {
		if matchesName(job.Name, nameFilter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeJobRepo) GetSkills(jobID int64) ([]models.Skill, error) {
	skills := []models.Skill{}
	for _, skillID := range r.jobSkills[jobID] {
		if skill, _ := r.skillRepo.GetByID(skillID); skill != nil {
			skills = append(skills, *skill)
		}
	}
	return skills, nil
}

func (r *fakeJobRepo) ReplaceSkills(jobID int64, skillIDs []int64) error {
	r.jobSkills[jobID] = append([]int64{}, skillIDs...)
	return nil
}

type fakePermissionRepo struct {
	permissions map[int64]*models.Permission
	nextID      int64
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{permissions: map[int64]*models.Permission{}}
}

func (r *fakePermissionRepo) Create(permission *models.Permission) error {
	r.nextID++
	permission.ID = r.nextID
	permission.CreatedAt = time.Now()
	permission.UpdatedAt = permission.CreatedAt
	copied := *permission
	r.permissions[permission.ID] = &copied
	return nil
}

func (r *fakePermissionRepo) GetByID(id int64) (*models.Permission, error) {
	permission, ok := r.permissions[id]
	if !ok {
		return nil, nil
	}
	copied := *permission
	return &copied, nil
}

func (r *fakePermissionRepo) ExistsByPathMethodModule(apiPath, method, module string) (bool, error) {
	for _, permission := range r.permissions {
		if permission.APIPath == apiPath && permission.Method == method && permission.Module == module {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePermissionRepo) Update(permission *models.Permission) error {
	stored, ok := r.permissions[permission.ID]
	if !ok {
		return nil
	}
	*stored = *permission
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakePermissionRepo) Delete(id int64) error {
	delete(r.permissions, id)
	return nil
}

func (r *fakePermissionRepo) DetachFromRoles(permissionID int64) error {
	return nil
}

func (r *fakePermissionRepo) List(nameFilter string, limit, offset int) ([]models.Permission, error) {
	permissions := []models.Permission{}
	for _, permission := range r.permissions {
		if matchesName(permission.Name, nameFilter) {
			permissions = append(permissions, *permission)
		}
	}
	return page(permissions, func(p models.Permission) int64 { return p.ID }, limit, offset), nil
}

func (r *fakePermissionRepo) Count(nameFilter string) (int64, error) {
	var count int64
	for _, permission := range r.permissions {
		if matchesName(permission.Name, nameFilter) {
			count++
		}
	}
	return count, nil
}

type fakeRoleRepo struct {
	roles          map[int64]*models.Role
	rolePerms      map[int64][]int64
	permissionRepo *fakePermissionRepo
	nextID         int64
}

func newFakeRoleRepo(permissionRepo *fakePermissionRepo) *fakeRoleRepo {
	return &fakeRoleRepo{
		roles:          map[int64]*models.Role{},
		rolePerms:      map[int64][]int64{},
		permissionRepo: permissionRepo,
	}
}

func (r *fakeRoleRepo) Create(role *models.Role) error {
	r.nextID++
	role.ID = r.nextID
	role.CreatedAt = time.Now()
	role.UpdatedAt = role.CreatedAt
	copied := *role
	r.roles[role.ID] = &copied
	return nil
}

func (r *fakeRoleRepo) GetByID(id int64) (*models.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	copied := *role
	return &copied, nil
}

func (r *fakeRoleRepo) ExistsByName(name string) (bool, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRoleRepo) Update(role *models.Role) error {
	stored, ok := r.roles[role.ID]
	if !ok {
		return nil
	}
	stored.Name = role.Name
	stored.Description = role.Description
	stored.Active = role.Active
	stored.UpdatedBy = role.UpdatedBy
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeRoleRepo) Delete(id int64) error {
	delete(r.roles, id)
	delete(r.rolePerms, id)
	return nil
}

func (r *fakeRoleRepo) List(nameFilter string, limit, offset int) ([]models.Role, error) {
	roles := []models.Role{}
	for _, role := range r.roles {
		if matchesName(role.Name, nameFilter) {
			roles = append(roles, *role)
		}
	}
	return page(roles, func(r models.Role) int64 { return r.ID }, limit, offset), nil
}

func (r *fakeRoleRepo) Count(nameFilter string) (int64, error) {
	var count int64
	for _, role := range r.roles {
		if matchesName(role.Name, nameFilter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeRoleRepo) GetPermissions(roleID int64) ([]models.Permission, error) {
	permissions := []models.Permission{}
	for _, permissionID := range r.rolePerms[roleID] {
		if permission, _ := r.permissionRepo.GetByID(permissionID); permission != nil {
			permissions = append(permissions, *permission)
		}
	}
	return permissions, nil
}

func (r *fakeRoleRepo) ReplacePermissions(roleID int64, permissionIDs []int64) error {
	r.rolePerms[roleID] = append([]int64{}, permissionIDs...)
	return nil
}

type fakeResumeRepo struct {
	resumes map[int64]*models.Resume
	nextID  int64
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: map[int64]*models.Resume{}}
}

func (r *fakeResumeRepo) Create(resume *models.Resume) error {
	r.nextID++
	resume.ID = r.nextID
	resume.CreatedAt = time.Now()
	resume.UpdatedAt = resume.CreatedAt
	copied := *resume
	r.resumes[resume.ID] = &copied
	return nil
}

func (r *fakeResumeRepo) GetByID(id int64) (*models.Resume, error) {
	resume, ok := r.resumes[id]
	if !ok {
		return nil, nil
	}
	copied := *resume
	return &copied, nil
}

func (r *fakeResumeRepo) UpdateStatus(resume *models.Resume) error {
	stored, ok := r.resumes[resume.ID]
	if !ok {
		return nil
	}
	stored.Status = resume.Status
	stored.UpdatedBy = resume.UpdatedBy
	stored.UpdatedAt = time.Now()
	resume.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *fakeResumeRepo) Delete(id int64) error {
	delete(r.resumes, id)
	return nil
}

func (r *fakeResumeRepo) List(emailFilter string, limit, offset int) ([]models.Resume, error) {
	resumes := []models.Resume{}
	for _, resume := range r.resumes {
		if matchesName(resume.Email, emailFilter) {
			resumes = append(resumes, *resume)
		}
	}
	return page(resumes, func(r models.Resume) int64 { return r.ID }, limit, offset), nil
}

func (r *fakeResumeRepo) Count(emailFilter string) (int64, error) {
	var count int64
	for _, resume := range r.resumes {
		if matchesName(resume.Email, emailFilter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeResumeRepo) ListByEmail(email string, limit, offset int) ([]models.Resume, error) {
	resumes := []models.Resume{}
	for _, resume := range r.resumes {
		if resume.CreatedBy == email {
			resumes = append(resumes, *resume)
		}
	}
	return page(resumes, func(r models.Resume) int64 { return r.ID }, limit, offset), nil
}

func (r *fakeResumeRepo) CountByEmail(email string) (int64, error) {
	var count int64
	for _, resume := range r.resumes {
		if resume.CreatedBy == email {
			count++
		}
	}
	return count, nil
}

type fakeSubscriberRepo struct {
	subscribers map[int64]*models.Subscriber
	subSkills   map[int64][]int64
	skillRepo   *fakeSkillRepo
	nextID      int64
}

func newFakeSubscriberRepo(skillRepo *fakeSkillRepo) *fakeSubscriberRepo {
	return &fakeSubscriberRepo{
		subscribers: map[int64]*models.Subscriber{},
		subSkills:   map[int64][]int64{},
		skillRepo:   skillRepo,
	}
}

func (r *fakeSubscriberRepo) Create(subscriber *models.Subscriber) error {
	r.nextID++
	subscriber.ID = r.nextID
	subscriber.CreatedAt = time.Now()
	subscriber.UpdatedAt = subscriber.CreatedAt
	copied := *subscriber
	r.subscribers[subscriber.ID] = &copied
	return nil
}

func (r *fakeSubscriberRepo) GetByID(id int64) (*models.Subscriber, error) {
	subscriber, ok := r.subscribers[id]
	if !ok {
		return nil, nil
	}
	copied := *subscriber
	return &copied, nil
}

func (r *fakeSubscriberRepo) GetByEmail(email string) (*models.Subscriber, error) {
	for _, subscriber := range r.subscribers {
		if subscriber.Email == email {
			copied := *subscriber
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriberRepo) ExistsByEmail(email string) (bool, error) {
	subscriber, _ := r.GetByEmail(email)
	return subscriber != nil, nil
}

func (r *fakeSubscriberRepo) Update(subscriber *models.Subscriber) error {
	stored, ok := r.subscribers[subscriber.ID]
	if !ok {
		return nil
	}
	stored.Name = subscriber.Name
	stored.UpdatedBy = subscriber.UpdatedBy
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSubscriberRepo) Delete(id int64) error {
	delete(r.subscribers, id)
	delete(r.subSkills, id)
	return nil
}

func (r *fakeSubscriberRepo) GetSkills(subscriberID int64) ([]models.Skill, error) {
	skills := []models.Skill{}
	for _, skillID := range r.subSkills[subscriberID] {
		if skill, _ := r.skillRepo.GetByID(skillID); skill != nil {
			skills = append(skills, *skill)
		}
	}
	return skills, nil
}

func (r *fakeSubscriberRepo) ReplaceSkills(subscriberID int64, skillIDs []int64) error {
	r.subSkills[subscriberID] = append([]int64{}, skillIDs...)
	return nil
}

func (r *fakeSubscriberRepo) DetachSkill(skillID int64) error {
	for subscriberID, skillIDs := range r.subSkills {
		kept := []int64{}
		for _, id := range skillIDs {
			if id != skillID {
				kept = append(kept, id)
			}
		}
		r.subSkills[subscriberID] = kept
	}
	return nil
}

type recordingNotifier struct {
	jobs    []string
	resumes []string
}

func (n *recordingNotifier) NotifyNewJob(jobName, companyName string) {
	n.jobs = append(n.jobs, jobName)
}

func (n *recordingNotifier) NotifyNewResume(applicantEmail, jobName string) {
	n.resumes = append(n.resumes, applicantEmail)
}

func matchesName(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

// page orders by id like the real repositories before slicing, so listings
// stay deterministic.
func page[T any](items []T, id func(T) int64, limit, offset int) []T {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
