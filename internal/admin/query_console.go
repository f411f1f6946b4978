package admin

import (
	"database/sql"
	"fmt"
	"strings"

	"agropazar-backend/internal/audit"
	"agropazar-backend/internal/auth"
	"agropazar-backend/internal/config"
	"agropazar-backend/internal/database"
	"agropazar-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ExecuteQueryRequest struct {
	Query string `json:"query"`
}

// stripLeadingComments: sorgunun başındaki boşlukları, -- satır
// yorumlarını ve /* */ blok yorumlarını atar. Yorumun arkasına
// saklanmış bir ifade böylece prefix kontrolünden kaçamaz.
func stripLeadingComments(s string) string {
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		switch {
		case strings.HasPrefix(s, "--"):
			idx := strings.IndexByte(s, '\n')
			if idx < 0 {
				return ""
			}
			s = s[idx+1:]
		case strings.HasPrefix(s, "/*"):
			idx := strings.Index(s, "*/")
			if idx < 0 {
				return ""
			}
			s = s[idx+2:]
		default:
			return s
		}
	}
}

// validateReadOnlyQuery: konsola yalnızca tek bir SELECT/WITH ifadesi
// girebilir. Bu kontrol kullanıcıya erken ve anlaşılır bir 400 vermek
// için; asıl güvenlik sınırı sorgunun READ ONLY transaction içinde
// çalıştırılması.
func validateReadOnlyQuery(q string) error {
	body := stripLeadingComments(q)
	if body == "" {
		return fmt.Errorf("query zorunlu")
	}

	// İlk anahtar kelime
	var kw strings.Builder
	for _, r := range body {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			kw.WriteRune(r)
			continue
		}
		break
	}
	switch strings.ToLower(kw.String()) {
	case "select", "with":
		// devam
	default:
		return fmt.Errorf("yalnızca SELECT/WITH sorgularına izin var")
	}

	// Çoklu ifade engeli: sondaki noktalı virgül serbest, içeride yasak
	rest := strings.TrimRight(strings.TrimSpace(body), ";")
	if strings.Contains(rest, ";") {
		return fmt.Errorf("tek bir sorguya izin var")
	}

	return nil
}

// POST /api/admin/execute-query
// Ad-hoc teşhis konsolu. Sorgu READ ONLY transaction içinde, statement
// timeout ile sınırlandırılarak çalışır; transaction her durumda geri
// alınır. Her çalıştırma audit'e yazılır.
func ExecuteQueryHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ExecuteQueryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if err := validateReadOnlyQuery(body.Query); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		userID, userEmail := auth.CurrentUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			EntityType:  "query_console",
			Action:      models.AuditActionExecuteQuery,
			Description: "Konsol sorgusu çalıştırıldı",
			QueryText:   body.Query,
		})

		tx := database.DB.Begin(&sql.TxOptions{ReadOnly: true})
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaction başlatılamadı")
		}
		// Salt okunur teşhis sorgusu: her durumda rollback
		defer tx.Rollback()

		// Yavaş bir konsol sorgusu havuz bağlantısını süresiz tutamaz.
		// statement_timeout parametre bağlamayı desteklemediği için değer
		// config'den gelir, kullanıcı girdisi değildir.
		if err := tx.Exec(fmt.Sprintf("SET LOCAL statement_timeout = %d", cfg.QueryTimeoutMS)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sorgu zaman sınırı ayarlanamadı")
		}

		rows, err := tx.Raw(body.Query).Rows()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Sorgu çalıştırılamadı",
				"error":   err.Error(),
			})
		}
		defer rows.Close()

		columns, err := rows.Columns()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kolon bilgisi alınamadı")
		}

		result := make([]map[string]interface{}, 0)
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		for rows.Next() {
			if err := rows.Scan(ptrs...); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": "Satır okunamadı",
					"error":   err.Error(),
				})
			}
			row := make(map[string]interface{}, len(columns))
			for i, col := range columns {
				v := values[i]
				if b, isBytes := v.([]byte); isBytes {
					row[col] = string(b)
				} else {
					row[col] = v
				}
			}
			result = append(result, row)
		}
		if err := rows.Err(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Sorgu çalıştırılamadı",
				"error":   err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"columns":  columns,
			"result":   result,
			"rowCount": len(result),
		})
	}
}
