package utils

import (
	"math/rand"
	"strings"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

var commonFirstNames = []string{
	"Derya", "Elif", "Mert", "Zeynep", "Emre", "Ayşe", "Can", "Selin",
	"Burak", "Gül", "Kerem", "Deniz", "İrem", "Okan", "Buse", "Tolga",
	"Ceren", "Umut", "Melis", "Barış",
}
var commonLastNames = []string{
	"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Yıldız", "Aydın",
	"Öztürk", "Arslan", "Doğan", "Kılıç", "Aslan", "Çetin", "Koç",
	"Kurt", "Özdemir",
}

func GenerateRandomTurkishName() string {
	return commonFirstNames[rand.Intn(len(commonFirstNames))] + " " + commonLastNames[rand.Intn(len(commonLastNames))]
}

// asciiFold maps Turkish letters onto plain ASCII for email local parts.
var asciiFold = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
	" ", ".",
)

func EmailLocalPart(fullName string) string {
	return strings.ToLower(asciiFold.Replace(fullName))
}

var employmentTypes = []domain.EmploymentType{
	domain.EmploymentFullTime,
	domain.EmploymentFullTime,
	domain.EmploymentPartTime,
}

var skillPool = []string{"espresso", "brew bar", "register", "latte art", "stock"}

func GenerateRandomBarista(emailDomainName string) *domain.Barista {
	fullName := GenerateRandomTurkishName()

	skills := []string{}
	for _, s := range skillPool {
		if rand.Intn(2) == 0 {
			skills = append(skills, s)
		}
	}

	employmentType := employmentTypes[rand.Intn(len(employmentTypes))]
	maxHours := 45.0
	preferred := []domain.ShiftType{domain.ShiftMorning, domain.ShiftEvening}
	if employmentType == domain.EmploymentPartTime {
		maxHours = 25.0
		preferred = []domain.ShiftType{domain.ShiftPartTime}
	}

	return &domain.Barista{
		FullName:        fullName,
		Email:           EmailLocalPart(fullName) + "@" + emailDomainName,
		EmploymentType:  employmentType,
		MaxWeeklyHours:  maxHours,
		PreferredShifts: preferred,
		Skills:          skills,
		IsActive:        true,
	}
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
var digits = "0123456789"

func GenerateRandomID(letterLength int, digitLength int) string {
	id := make([]rune, letterLength+digitLength)
	for i := range id {
		if i < letterLength {
			id[i] = letters[rand.Intn(len(letters))]
		} else {
			id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(id)
}
