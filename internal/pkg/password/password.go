package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash of plain. A cost of zero or less falls
// back to bcrypt.DefaultCost.
func Hash(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
