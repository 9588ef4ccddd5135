package usecase

// Phones возвращает телефоны контакта в порядке добавления
func (u *ContactUsecase) Phones(name string) ([]string, error) {
	record, err := u.FindContact(name)
	if err != nil {
		return nil, err
	}

	phones := make([]string, len(record.Phones))
	for i, phone := range record.Phones {
		phones[i] = phone.String()
	}

	return phones, nil
}
