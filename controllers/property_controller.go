package controllers

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/utils"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

func propertyToResponse(p models.Property) dto.PropertyResponse {
	rooms := make([]dto.RoomResponse, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		if room.IsDeleted {
			continue
		}
		rooms = append(rooms, dto.RoomResponse{
			ID:                  room.ID,
			PropertyID:          room.PropertyID,
			Category:            room.Category,
			RoomNumbers:         room.RoomNumbers,
			TotalRooms:          room.TotalRooms(),
			Price:               room.Price,
			Accommodates:        room.Accommodates,
			ChildrenAccommodate: room.ChildrenAccommodate,
			CreatedAt:           room.CreatedAt,
			UpdatedAt:           room.UpdatedAt,
		})
	}
	return dto.PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		City:         p.City,
		Country:      p.Country,
		Continent:    p.Continent,
		Avatar:       p.Avatar,
		TimeCheckIn:  p.TimeCheckIn,
		TimeCheckOut: p.TimeCheckOut,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Rooms:        rooms,
	}
}

// GetAllProperties lists properties for the authenticated owner or admin.
// The unfiltered list is cached per role; filters and pagination run over
// the cached slice.
func GetAllProperties(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var cacheKey string
	if currentUserRole == 1 {
		cacheKey = fmt.Sprintf("properties:owner:%d", currentUserID)
	} else {
		cacheKey = "properties:all"
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allProperties []models.Property

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allProperties); err != nil || len(allProperties) == 0 {
		tx := config.DB.Model(&models.Property{}).
			Preload("Rooms").
			Where("is_deleted = false")
		if currentUserRole == 1 {
			tx = tx.Where("user_id = ?", currentUserID)
		}

		if err := tx.Find(&allProperties).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allProperties, 60*time.Minute); err != nil {
			utils.LogError("Error caching property list: %v", err)
		}
	}

	cityFilter := c.Query("city")
	countryFilter := c.Query("country")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")

	filtered := make([]models.Property, 0)
	for _, p := range allProperties {
		if cityFilter != "" {
			decoded, _ := url.QueryUnescape(cityFilter)
			if !strings.Contains(strings.ToLower(p.City), strings.ToLower(decoded)) {
				continue
			}
		}
		if countryFilter != "" {
			decoded, _ := url.QueryUnescape(countryFilter)
			if !strings.Contains(strings.ToLower(p.Country), strings.ToLower(decoded)) {
				continue
			}
		}
		if nameFilter != "" {
			decoded, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(decoded)) {
				continue
			}
		}
		if statusFilter != "" {
			parsed, err := strconv.Atoi(statusFilter)
			if err == nil && p.Status != parsed {
				continue
			}
		}
		filtered = append(filtered, p)
	}
	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	start := page * limit
	end := start + limit
	if start >= len(filtered) {
		filtered = []models.Property{}
	} else if end > len(filtered) {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	propertiesResponse := make([]dto.PropertyResponse, 0, len(filtered))
	for _, p := range filtered {
		propertiesResponse = append(propertiesResponse, propertyToResponse(p))
	}

	response.SuccessWithPagination(c, propertiesResponse, page, limit, total)
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func extractPeopleFromQuery(query string) int {
	re := regexp.MustCompile(`(\d+)\s*(people|persons|guests|adults)`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	people, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return people
}

// parseCategoryFromQuery maps free text onto a room category.
func parseCategoryFromQuery(query string) string {
	singleKeywords := []string{"single", "single room", "solo"}
	doubleKeywords := []string{"double", "double room", "twin", "couple"}
	deluxeKeywords := []string{"deluxe", "deluxe room", "suite", "luxury"}

	normalizedQuery := normalizeInput(query)

	singleMatcher := createMatcher(singleKeywords)
	doubleMatcher := createMatcher(doubleKeywords)
	deluxeMatcher := createMatcher(deluxeKeywords)

	singleMatch := singleMatcher.Closest(normalizedQuery)
	doubleMatch := doubleMatcher.Closest(normalizedQuery)
	deluxeMatch := deluxeMatcher.Closest(normalizedQuery)

	if deluxeMatch != "" && strings.Contains(normalizedQuery, deluxeMatch) {
		return "Deluxe"
	}
	if doubleMatch != "" && strings.Contains(normalizedQuery, doubleMatch) {
		return "Double"
	}
	if singleMatch != "" && strings.Contains(normalizedQuery, singleMatch) {
		return "Single"
	}

	return ""
}

func prepareUniqueList(properties []models.Property, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, p := range properties {
		var value string
		switch field {
		case "city":
			value = p.City
		case "country":
			value = p.Country
		}
		if value != "" {
			uniqueValues[normalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func calculateScore(query string, p models.Property, cmCity, cmCountry *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if category := parseCategoryFromQuery(normalizedQuery); category != "" {
		for _, room := range p.Rooms {
			if room.Category == category && !room.IsDeleted {
				score += 20
				break
			}
		}
	}
	score += calculateLocationScore(normalizedQuery, p, cmCity, cmCountry)

	similarity := calculateSimilarity(normalizedQuery, normalizeInput(p.Name))
	if similarity > 0.7 || strings.Contains(normalizedQuery, normalizeInput(p.Name)) {
		score += 15
	}

	return score
}

func calculateLocationScore(query string, p models.Property, cmCity, cmCountry *closestmatch.ClosestMatch) int {
	score := 0
	if cmCity.Closest(query) == normalizeInput(p.City) {
		score += 13
	}
	if cmCountry.Closest(query) == normalizeInput(p.Country) {
		score += 5
	}
	return score
}

func filterAndScoreProperties(
	query string,
	properties []models.Property,
	cmCity, cmCountry *closestmatch.ClosestMatch,
) []dto.ScoredProperty {
	var scored []dto.ScoredProperty
	scoreCh := make(chan dto.ScoredProperty, len(properties))
	var wg sync.WaitGroup

	for _, p := range properties {
		wg.Add(1)
		go func(p models.Property) {
			defer wg.Done()
			score := calculateScore(query, p, cmCity, cmCountry)
			if score > 0 {
				scoreCh <- dto.ScoredProperty{
					Property: propertyToResponse(p),
					Score:    score,
				}
			}
		}(p)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for sp := range scoreCh {
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func loadPropertiesFromDB(allProperties *[]models.Property) error {
	return config.DB.Model(&models.Property{}).
		Preload("Rooms").
		Where("is_deleted = false AND status = 1").
		Find(allProperties).Error
}

// SearchProperties is the public free-text search. Typed filters from the
// session's previous search are merged in so refinements accumulate.
func SearchProperties(c *gin.Context) {
	query := c.Query("q")

	filters := &dto.SearchFilters{
		Query:    query,
		City:     c.Query("city"),
		Country:  c.Query("country"),
		Category: c.Query("category"),
	}
	if peopleStr := c.Query("people"); peopleStr != "" {
		if people, err := strconv.Atoi(peopleStr); err == nil {
			filters.People = &people
		}
	}
	if priceMinStr := c.Query("priceMin"); priceMinStr != "" {
		if priceMin, err := strconv.Atoi(priceMinStr); err == nil {
			filters.PriceMin = &priceMin
		}
	}
	if priceMaxStr := c.Query("priceMax"); priceMaxStr != "" {
		if priceMax, err := strconv.Atoi(priceMaxStr); err == nil {
			filters.PriceMax = &priceMax
		}
	}
	if checkinStr := c.Query("checkin"); checkinStr != "" {
		if checkin, err := time.Parse("2006-01-02", checkinStr); err == nil {
			filters.FromDate = &checkin
		}
	}
	if checkoutStr := c.Query("checkout"); checkoutStr != "" {
		if checkout, err := time.Parse("2006-01-02", checkoutStr); err == nil {
			filters.ToDate = &checkout
		}
	}

	sessionId := c.GetString("sessionId")
	rdb, err := config.ConnectRedis()
	if err == nil && sessionId != "" {
		if old, err := services.GetLastFilters(config.Ctx, rdb, sessionId); err == nil {
			filters = services.MergeFilters(old, filters)
		}
		if err := services.SaveLastFilters(config.Ctx, rdb, sessionId, filters); err != nil {
			utils.LogError("Error saving search filters: %v", err)
		}
	}

	var allProperties []models.Property
	if err := loadPropertiesFromDB(&allProperties); err != nil {
		response.ServerError(c)
		return
	}

	matched := make([]models.Property, 0, len(allProperties))
	for _, p := range allProperties {
		if !isPropertyMatch(p, filters) {
			continue
		}
		matched = append(matched, p)
	}

	if filters.FromDate != nil && filters.ToDate != nil && !filters.ToDate.Before(*filters.FromDate) {
		r := services.DateRange{From: *filters.FromDate, To: *filters.ToDate}
		available := matched[:0]
		for _, p := range matched {
			snapshot, err := services.LoadSnapshot(config.DB, p.ID, r)
			if err != nil {
				continue
			}
			if hasFreeRoom(snapshot, r, filters.Category) {
				available = append(available, p)
			}
		}
		matched = available
	}

	if filters.Query == "" {
		propertiesResponse := make([]dto.PropertyResponse, 0, len(matched))
		for _, p := range matched {
			propertiesResponse = append(propertiesResponse, propertyToResponse(p))
		}
		response.SuccessWithTotal(c, propertiesResponse, len(propertiesResponse))
		return
	}

	cmCity := createMatcher(prepareUniqueList(matched, "city"))
	cmCountry := createMatcher(prepareUniqueList(matched, "country"))

	scored := filterAndScoreProperties(filters.Query, matched, cmCity, cmCountry)
	response.SuccessWithTotal(c, scored, len(scored))
}

// hasFreeRoom reports whether the snapshot shows at least one free room
// over r, scoped to one category when the filter names it.
func hasFreeRoom(snapshot *services.Snapshot, r services.DateRange, category string) bool {
	for _, row := range snapshot.Report(r) {
		if category != "" && row.Category != category {
			continue
		}
		if row.AvailableCount > 0 {
			return true
		}
	}
	return false
}

func isPropertyMatch(p models.Property, filters *dto.SearchFilters) bool {
	if filters.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(filters.City)) {
		return false
	}
	if filters.Country != "" && !strings.Contains(strings.ToLower(p.Country), strings.ToLower(filters.Country)) {
		return false
	}

	if filters.Category != "" || filters.People != nil || filters.PriceMin != nil || filters.PriceMax != nil {
		matchedRoom := false
		for _, room := range p.Rooms {
			if room.IsDeleted {
				continue
			}
			if filters.Category != "" && room.Category != filters.Category {
				continue
			}
			if filters.People != nil && room.Accommodates < *filters.People {
				continue
			}
			if filters.PriceMin != nil && room.Price < *filters.PriceMin {
				continue
			}
			if filters.PriceMax != nil && room.Price > *filters.PriceMax {
				continue
			}
			matchedRoom = true
			break
		}
		if !matchedRoom {
			return false
		}
	}

	return true
}

func CreateProperty(c *gin.Context) {
	var input dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	currentUserID := c.GetUint("userID")

	property := models.Property{
		UserID:       currentUserID,
		Name:         input.Name,
		Address:      input.Address,
		City:         input.City,
		Country:      input.Country,
		Continent:    input.Continent,
		Description:  input.Description,
		Img:          input.Img,
		Avatar:       input.Avatar,
		TimeCheckIn:  input.TimeCheckIn,
		TimeCheckOut: input.TimeCheckOut,
		Longitude:    input.Longitude,
		Latitude:     input.Latitude,
		Status:       1,
	}

	if err := config.DB.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(currentUserID)

	response.Success(c, propertyToResponse(property))
}

func GetPropertyDetail(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := config.DB.Preload("Rooms").Where("id = ? AND is_deleted = false", id).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, property)
}

func UpdateProperty(c *gin.Context) {
	var input dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.Where("id = ? AND is_deleted = false", input.ID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")
	if currentUserRole == 1 && property.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	property.Name = input.Name
	property.Address = input.Address
	property.City = input.City
	property.Country = input.Country
	property.Continent = input.Continent
	property.Description = input.Description
	property.Img = input.Img
	property.Avatar = input.Avatar
	property.TimeCheckIn = input.TimeCheckIn
	property.TimeCheckOut = input.TimeCheckOut
	property.Longitude = input.Longitude
	property.Latitude = input.Latitude

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(property.UserID)

	response.Success(c, propertyToResponse(property))
}

func ChangePropertyStatus(c *gin.Context) {
	var input dto.PropertyStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.Where("id = ? AND is_deleted = false", input.ID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	property.Status = input.Status
	if err := property.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(property.UserID)

	response.Success(c, propertyToResponse(property))
}

// DeleteProperty soft-deletes; existing bookings keep their property
// reference.
func DeleteProperty(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")
	if currentUserRole == 1 && property.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	property.IsDeleted = true
	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(property.UserID)

	response.Success(c, nil)
}

// GetCountryCounts is the home-page listing of property counts per
// country.
func GetCountryCounts(c *gin.Context) {
	var counts []dto.CountryPropertyCount
	err := config.DB.Model(&models.Property{}).
		Select("country as location, continent, count(*) as no_of_property").
		Where("is_deleted = false AND status = 1").
		Group("country, continent").
		Order("no_of_property desc").
		Scan(&counts).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, counts, len(counts))
}

func invalidatePropertyCaches(ownerID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	services.DeleteFromRedis(config.Ctx, rdb, "properties:all")
	services.DeleteFromRedis(config.Ctx, rdb, fmt.Sprintf("properties:owner:%d", ownerID))
}
