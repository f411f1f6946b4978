package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReadOnlyQuery_Allowed(t *testing.T) {
	cases := []string{
		"SELECT 1",
		"select * from users",
		"  SELECT id FROM crops ORDER BY type",
		"WITH t AS (SELECT 1 AS n) SELECT n FROM t",
		"with t as (select 1) select * from t",
		"SELECT 1;",          // sondaki noktalı virgül serbest
		"SELECT 1 ; \n",      // boşluklu varyant
		"-- yorum\nSELECT 1", // baştaki satır yorumu atlanır
		"/* blok yorum */ SELECT 1",
	}
	for _, q := range cases {
		assert.NoError(t, validateReadOnlyQuery(q), "kabul edilmeliydi: %q", q)
	}
}

func TestValidateReadOnlyQuery_Rejected(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"-- sadece yorum",
		"/* kapanmamış blok",
		"DROP TABLE users",
		"drop table users",
		"DELETE FROM users",
		"UPDATE users SET role = 'admin'",
		"TRUNCATE crops",
		"ALTER TABLE users ADD COLUMN x int",
		"INSERT INTO users VALUES (1)",
		// Yorumla gizlenmiş mutasyon prefix kontrolüne takılır
		"/* SELECT */ DROP TABLE users",
		"-- SELECT\nDELETE FROM crops",
		// Çoklu ifade
		"SELECT 1; DROP TABLE users",
		"SELECT 1; SELECT 2",
	}
	for _, q := range cases {
		assert.Error(t, validateReadOnlyQuery(q), "reddedilmeliydi: %q", q)
	}
}
