package models

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Parent{}, &Admin{}, &Supplier{}, &Artist{}, &OTP{},
		&Child{}, &GrowthEntry{}, &ChildRelation{},
		&Activity{}, &BabySleep{}, &TemperatureReading{},
		&FeedSchedule{}, &FeedSlot{},
		&Milestone{}, &SubMilestone{}, &ChildMilestoneProgress{},
		&Vaccination{}, &VaccinationProgress{},
		&Category{}, &SubCategory{}, &Product{}, &Music{},
		&Cart{}, &CartItem{}, &Order{}, &OrderItem{},
		&ProductFavorite{}, &MusicFavorite{}, &PurchasedMusic{},
		&Chat{}, &ChatParticipant{}, &ChatMessage{}, &Message{},
		&Tip{}, &SupportQuery{},
	}
}
