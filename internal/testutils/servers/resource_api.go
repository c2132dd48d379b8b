package servers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type record struct {
	id   string
	body map[string]any
}

type listParams struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

type ResourceApiCfg struct {
	Token string

	// Required lists the payload fields a resource demands on writes.
	// Missing ones are rejected with a 422 and a field error map.
	Required map[string][]string
}

// ResourceApi is an in-memory resource backend with the same surface the
// client expects: bearer auth, skip/limit listings wrapped in a
// data/count envelope, and per-field validation errors. Failures can be
// injected to exercise the retry and error paths.
type ResourceApi struct {
	Engine *gin.Engine

	token    string
	required map[string][]string

	mutex      sync.Mutex
	resources  map[string][]record
	listCalls  map[string]int
	failures   int
	rateLimits int
	resetMs    int
	listDelay  time.Duration
}

func NewResourceApi(cfg ResourceApiCfg) *ResourceApi {

	gin.SetMode(gin.TestMode)

	ra := &ResourceApi{
		token:     cfg.Token,
		required:  cfg.Required,
		resources: make(map[string][]record),
		listCalls: make(map[string]int),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/api/v1", ra.auth())

	v1.GET("/:resource", ra.list)
	v1.POST("/:resource", ra.create)
	v1.GET("/:resource/:id", ra.get)
	v1.PUT("/:resource/:id", ra.update)
	v1.DELETE("/:resource/:id", ra.remove)

	ra.Engine = engine

	return ra
}

// Seed replaces the records of a resource. Bodies without an id get one.
func (ra *ResourceApi) Seed(resource string, bodies []json.RawMessage) error {

	records := make([]record, 0, len(bodies))

	for _, raw := range bodies {
		body := map[string]any{}

		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("failed to unmarshal seed record - %w", err)
		}

		id, _ := body["id"].(string)

		if id == "" {
			id = uuid.NewString()
			body["id"] = id
		}

		records = append(records, record{id: id, body: body})
	}

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	ra.resources[resource] = records

	return nil
}

// FailNext makes the next n listing calls fail with a 500.
func (ra *ResourceApi) FailNext(n int) {

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	ra.failures = n
}

// RateLimitNext makes the next n listing calls answer 429 with the reset
// header set to resetMs milliseconds.
func (ra *ResourceApi) RateLimitNext(n int, resetMs int) {

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	ra.rateLimits = n
	ra.resetMs = resetMs
}

// SetListDelay adds artificial latency to listing calls, widening the
// window in which concurrent loads overlap.
func (ra *ResourceApi) SetListDelay(delay time.Duration) {

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	ra.listDelay = delay
}

// ListCalls reports how many listing requests reached the handler for a
// resource, rate limited and failed ones included.
func (ra *ResourceApi) ListCalls(resource string) int {

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	return ra.listCalls[resource]
}

func (ra *ResourceApi) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := fmt.Sprintf("Bearer %v", ra.token)

		if c.GetHeader("Authorization") != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid bearer token"})
			return
		}

		c.Next()
	}
}

func (ra *ResourceApi) list(c *gin.Context) {

	resource := c.Param("resource")

	ra.mutex.Lock()

	ra.listCalls[resource] += 1

	delay := ra.listDelay
	rateLimited := ra.rateLimits > 0
	resetMs := ra.resetMs

	if rateLimited {
		ra.rateLimits -= 1
	}

	failed := !rateLimited && ra.failures > 0

	if failed {
		ra.failures -= 1
	}

	records := make([]record, len(ra.resources[resource]))
	copy(records, ra.resources[resource])

	ra.mutex.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if rateLimited {
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetMs))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limited"})
		return
	}

	if failed {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "injected failure"})
		return
	}

	params := listParams{}

	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := map[string]string{}

	for name, values := range c.Request.URL.Query() {
		if name == "skip" || name == "limit" || len(values) == 0 {
			continue
		}

		filters[name] = values[0]
	}

	matched := make([]map[string]any, 0, len(records))

	for _, r := range records {
		if matchesFilters(r.body, filters) {
			matched = append(matched, r.body)
		}
	}

	count := len(matched)
	skip := min(params.Skip, count)
	end := count

	if params.Limit > 0 {
		end = min(skip+params.Limit, count)
	}

	c.JSON(http.StatusOK, gin.H{"count": count, "data": matched[skip:end]})
}

func (ra *ResourceApi) create(c *gin.Context) {

	resource := c.Param("resource")
	body := map[string]any{}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json payload"})
		return
	}

	if fields := ra.missingFields(resource, body); len(fields) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	id, _ := body["id"].(string)

	if id == "" {
		id = uuid.NewString()
		body["id"] = id
	}

	ra.mutex.Lock()
	ra.resources[resource] = append([]record{{id: id, body: body}}, ra.resources[resource]...)
	ra.mutex.Unlock()

	c.JSON(http.StatusCreated, body)
}

func (ra *ResourceApi) get(c *gin.Context) {

	resource := c.Param("resource")
	id := c.Param("id")

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	for _, r := range ra.resources[resource] {
		if r.id == id {
			c.JSON(http.StatusOK, r.body)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v %v not found", resource, id)})
}

func (ra *ResourceApi) update(c *gin.Context) {

	resource := c.Param("resource")
	id := c.Param("id")
	body := map[string]any{}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json payload"})
		return
	}

	if fields := ra.missingFields(resource, body); len(fields) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	body["id"] = id

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	for i, r := range ra.resources[resource] {
		if r.id == id {
			ra.resources[resource][i] = record{id: id, body: body}
			c.JSON(http.StatusOK, body)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v %v not found", resource, id)})
}

func (ra *ResourceApi) remove(c *gin.Context) {

	resource := c.Param("resource")
	id := c.Param("id")

	ra.mutex.Lock()
	defer ra.mutex.Unlock()

	records := ra.resources[resource]

	for i, r := range records {
		if r.id == id {
			ra.resources[resource] = append(records[:i:i], records[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v %v not found", resource, id)})
}

func (ra *ResourceApi) missingFields(resource string, body map[string]any) map[string]string {

	fields := map[string]string{}

	for _, name := range ra.required[resource] {
		value, ok := body[name]

		if !ok || fmt.Sprintf("%v", value) == "" {
			fields[name] = "required"
		}
	}

	return fields
}

func matchesFilters(body map[string]any, filters map[string]string) bool {

	for name, expected := range filters {
		value, ok := body[name]

		if !ok || fmt.Sprintf("%v", value) != expected {
			return false
		}
	}

	return true
}
