package models

import "fmt"

type NotificationCode string

type NotificationTpl struct {
	Name  string
	Title string
	Msg   string
}

var NotificationCodeMap = map[NotificationCode]NotificationTpl{
	NotifyApprovalRequested: {Name: "Новый запрос на согласование", Title: "Требуется согласование", Msg: "Поступил запрос на согласование: «%v». Инициатор: %v."},
	NotifyApprovalApproved:  {Name: "Согласование запроса", Title: "Запрос согласован", Msg: "Ваш запрос «%v» был согласован."},
	NotifyApprovalRejected:  {Name: "Отклонение запроса", Title: "Запрос отклонён", Msg: "Ваш запрос «%v» был отклонён. Причина: %v."},
}

const (
	NotifyApprovalRequested NotificationCode = "NotifyApprovalRequested"
	NotifyApprovalApproved  NotificationCode = "NotifyApprovalApproved"
	NotifyApprovalRejected  NotificationCode = "NotifyApprovalRejected"
)

type NotificationData struct {
	Code  NotificationCode
	Title string
	Msg   string
}

func GetNotifyApprovalRequested(description, requesterName string) NotificationData {
	code := NotifyApprovalRequested
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, description, requesterName),
	}
}

func GetNotifyApprovalApproved(description string) NotificationData {
	code := NotifyApprovalApproved
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, description),
	}
}

func GetNotifyApprovalRejected(description, remarks string) NotificationData {
	code := NotifyApprovalRejected
	if remarks == "" {
		remarks = "не указана"
	}
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, description, remarks),
	}
}
