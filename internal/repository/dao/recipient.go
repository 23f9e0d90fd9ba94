package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// segmentAll 不依赖分群成员表，直接取该类型的全部接收者
const segmentAll = "all"

type recipientDAO struct {
	db *egorm.Component
}

func (dao *recipientDAO) FindByUserID(ctx context.Context, userID, userType string) (Recipient, error) {
	var r Recipient
	err := dao.db.WithContext(ctx).
		Where("user_id = ? AND user_type = ?", userID, userType).
		First(&r).Error
	return r, err
}

func (dao *recipientDAO) FindBySegment(ctx context.Context, segment, userType string) ([]Recipient, error) {
	var rs []Recipient
	if segment == segmentAll {
		err := dao.db.WithContext(ctx).
			Where("user_type = ?", userType).
			Order("id ASC").
			Find(&rs).Error
		return rs, err
	}
	err := dao.db.WithContext(ctx).
		Model(&Recipient{}).
		Joins("JOIN `recipient_segments` ON `recipient_segments`.`user_id` = `recipients`.`user_id` AND `recipient_segments`.`user_type` = `recipients`.`user_type`").
		Where("`recipient_segments`.`segment` = ? AND `recipients`.`user_type` = ?", segment, userType).
		Order("`recipients`.`id` ASC").
		Find(&rs).Error
	return rs, err
}

func NewRecipientDAO(db *egorm.Component) RecipientDAO {
	return &recipientDAO{db: db}
}

// Recipient 用户目录同步过来的接收者只读视图
type Recipient struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;comment:'自增ID'"`
	UserID      string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:idx_user_id_type,priority:1;comment:'用户ID'"`
	UserType    string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:idx_user_id_type,priority:2;index:idx_user_type;comment:'用户类型：customer/driver/restaurant'"`
	DisplayName string `gorm:"type:VARCHAR(128);NOT NULL;DEFAULT:'';comment:'展示名称，用于模板变量'"`
	Attributes  string `gorm:"type:TEXT;comment:'其余可作为模板变量的属性，JSON对象'"`
	Ctime       int64
	Utime       int64
}

func (Recipient) TableName() string {
	return "recipients"
}

// RecipientSegment 分群成员关系，由用户目录服务维护
type RecipientSegment struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:'自增ID'"`
	UserID   string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:idx_segment_user,priority:3;comment:'用户ID'"`
	UserType string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:idx_segment_user,priority:2;comment:'用户类型'"`
	Segment  string `gorm:"type:ENUM('new','active','inactive');NOT NULL;uniqueIndex:idx_segment_user,priority:1;comment:'分群'"`
	Ctime    int64
	Utime    int64
}

func (RecipientSegment) TableName() string {
	return "recipient_segments"
}
