// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: labelverify/v1/labelverify.proto

package labelverifypb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Label is a submitted label application. status carries the effective
// status at read time; stored_status is the raw persisted value. Deadline
// fields are present only while a correction window is open.
type Label struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplicantId        string                 `protobuf:"bytes,2,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	BatchId            string                 `protobuf:"bytes,3,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	ImagePath          string                 `protobuf:"bytes,4,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	Status             string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	StoredStatus       string                 `protobuf:"bytes,6,opt,name=stored_status,json=storedStatus,proto3" json:"stored_status,omitempty"`
	BrandName          string                 `protobuf:"bytes,7,opt,name=brand_name,json=brandName,proto3" json:"brand_name,omitempty"`
	BeverageType       string                 `protobuf:"bytes,8,opt,name=beverage_type,json=beverageType,proto3" json:"beverage_type,omitempty"`
	AlcoholContent     string                 `protobuf:"bytes,9,opt,name=alcohol_content,json=alcoholContent,proto3" json:"alcohol_content,omitempty"` // percent ABV, decimal string
	OverallConfidence  float32                `protobuf:"fixed32,10,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	CorrectionDeadline string                 `protobuf:"bytes,11,opt,name=correction_deadline,json=correctionDeadline,proto3" json:"correction_deadline,omitempty"` // RFC3339
	DaysRemaining      int32                  `protobuf:"varint,12,opt,name=days_remaining,json=daysRemaining,proto3" json:"days_remaining,omitempty"`
	Urgency            string                 `protobuf:"bytes,13,opt,name=urgency,proto3" json:"urgency,omitempty"` // expired | red | amber | green
	AssignedSpecialist string                 `protobuf:"bytes,14,opt,name=assigned_specialist,json=assignedSpecialist,proto3" json:"assigned_specialist,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,15,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Label) Reset() {
	*x = Label{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Label) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Label) ProtoMessage() {}

func (x *Label) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Label.ProtoReflect.Descriptor instead.
func (*Label) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{0}
}

func (x *Label) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Label) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *Label) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *Label) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *Label) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Label) GetStoredStatus() string {
	if x != nil {
		return x.StoredStatus
	}
	return ""
}

func (x *Label) GetBrandName() string {
	if x != nil {
		return x.BrandName
	}
	return ""
}

func (x *Label) GetBeverageType() string {
	if x != nil {
		return x.BeverageType
	}
	return ""
}

func (x *Label) GetAlcoholContent() string {
	if x != nil {
		return x.AlcoholContent
	}
	return ""
}

func (x *Label) GetOverallConfidence() float32 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *Label) GetCorrectionDeadline() string {
	if x != nil {
		return x.CorrectionDeadline
	}
	return ""
}

func (x *Label) GetDaysRemaining() int32 {
	if x != nil {
		return x.DaysRemaining
	}
	return 0
}

func (x *Label) GetUrgency() string {
	if x != nil {
		return x.Urgency
	}
	return ""
}

func (x *Label) GetAssignedSpecialist() string {
	if x != nil {
		return x.AssignedSpecialist
	}
	return ""
}

func (x *Label) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Label) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Label) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Batch struct {
	state                      protoimpl.MessageState `protogen:"open.v1"`
	Id                         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplicantId                string                 `protobuf:"bytes,2,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	Name                       string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Status                     string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	TotalLabels                int32                  `protobuf:"varint,5,opt,name=total_labels,json=totalLabels,proto3" json:"total_labels,omitempty"`
	ProcessedCount             int32                  `protobuf:"varint,6,opt,name=processed_count,json=processedCount,proto3" json:"processed_count,omitempty"`
	ApprovedCount              int32                  `protobuf:"varint,7,opt,name=approved_count,json=approvedCount,proto3" json:"approved_count,omitempty"`
	ConditionallyApprovedCount int32                  `protobuf:"varint,8,opt,name=conditionally_approved_count,json=conditionallyApprovedCount,proto3" json:"conditionally_approved_count,omitempty"`
	RejectedCount              int32                  `protobuf:"varint,9,opt,name=rejected_count,json=rejectedCount,proto3" json:"rejected_count,omitempty"`
	NeedsCorrectionCount       int32                  `protobuf:"varint,10,opt,name=needs_correction_count,json=needsCorrectionCount,proto3" json:"needs_correction_count,omitempty"`
	ErrorMessage               string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt                  string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt                  string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields              protoimpl.UnknownFields
	sizeCache                  protoimpl.SizeCache
}

func (x *Batch) Reset() {
	*x = Batch{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Batch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Batch) ProtoMessage() {}

func (x *Batch) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Batch.ProtoReflect.Descriptor instead.
func (*Batch) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{1}
}

func (x *Batch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Batch) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *Batch) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Batch) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Batch) GetTotalLabels() int32 {
	if x != nil {
		return x.TotalLabels
	}
	return 0
}

func (x *Batch) GetProcessedCount() int32 {
	if x != nil {
		return x.ProcessedCount
	}
	return 0
}

func (x *Batch) GetApprovedCount() int32 {
	if x != nil {
		return x.ApprovedCount
	}
	return 0
}

func (x *Batch) GetConditionallyApprovedCount() int32 {
	if x != nil {
		return x.ConditionallyApprovedCount
	}
	return 0
}

func (x *Batch) GetRejectedCount() int32 {
	if x != nil {
		return x.RejectedCount
	}
	return 0
}

func (x *Batch) GetNeedsCorrectionCount() int32 {
	if x != nil {
		return x.NeedsCorrectionCount
	}
	return 0
}

func (x *Batch) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Batch) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Batch) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

// BatchLabel is the per-label projection inside a batch status read.
type BatchLabel struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status            string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"` // effective status
	OverallConfidence float32                `protobuf:"fixed32,3,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *BatchLabel) Reset() {
	*x = BatchLabel{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchLabel) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchLabel) ProtoMessage() {}

func (x *BatchLabel) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchLabel.ProtoReflect.Descriptor instead.
func (*BatchLabel) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{2}
}

func (x *BatchLabel) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BatchLabel) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BatchLabel) GetOverallConfidence() float32 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

type Applicant struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Company       string                 `protobuf:"bytes,4,opt,name=company,proto3" json:"company,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Applicant) Reset() {
	*x = Applicant{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Applicant) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Applicant) ProtoMessage() {}

func (x *Applicant) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Applicant.ProtoReflect.Descriptor instead.
func (*Applicant) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{3}
}

func (x *Applicant) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Applicant) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Applicant) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Applicant) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Applicant) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Applicant) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListLabelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLabelsRequest) Reset() {
	*x = ListLabelsRequest{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLabelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLabelsRequest) ProtoMessage() {}

func (x *ListLabelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLabelsRequest.ProtoReflect.Descriptor instead.
func (*ListLabelsRequest) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{4}
}

func (x *ListLabelsRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *ListLabelsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListLabelsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListLabelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Labels        []*Label               `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLabelsResponse) Reset() {
	*x = ListLabelsResponse{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLabelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLabelsResponse) ProtoMessage() {}

func (x *ListLabelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLabelsResponse.ProtoReflect.Descriptor instead.
func (*ListLabelsResponse) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{5}
}

func (x *ListLabelsResponse) GetLabels() []*Label {
	if x != nil {
		return x.Labels
	}
	return nil
}

type GetLabelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LabelId       string                 `protobuf:"bytes,1,opt,name=label_id,json=labelId,proto3" json:"label_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLabelRequest) Reset() {
	*x = GetLabelRequest{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLabelRequest) ProtoMessage() {}

func (x *GetLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLabelRequest.ProtoReflect.Descriptor instead.
func (*GetLabelRequest) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{6}
}

func (x *GetLabelRequest) GetLabelId() string {
	if x != nil {
		return x.LabelId
	}
	return ""
}

type GetLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         *Label                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLabelResponse) Reset() {
	*x = GetLabelResponse{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLabelResponse) ProtoMessage() {}

func (x *GetLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLabelResponse.ProtoReflect.Descriptor instead.
func (*GetLabelResponse) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{7}
}

func (x *GetLabelResponse) GetLabel() *Label {
	if x != nil {
		return x.Label
	}
	return nil
}

type SubmitDecisionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LabelId       string                 `protobuf:"bytes,1,opt,name=label_id,json=labelId,proto3" json:"label_id,omitempty"`
	Decision      string                 `protobuf:"bytes,2,opt,name=decision,proto3" json:"decision,omitempty"` // approved | conditionally_approved | needs_correction | rejected
	Specialist    string                 `protobuf:"bytes,3,opt,name=specialist,proto3" json:"specialist,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDecisionRequest) Reset() {
	*x = SubmitDecisionRequest{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDecisionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDecisionRequest) ProtoMessage() {}

func (x *SubmitDecisionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDecisionRequest.ProtoReflect.Descriptor instead.
func (*SubmitDecisionRequest) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{8}
}

func (x *SubmitDecisionRequest) GetLabelId() string {
	if x != nil {
		return x.LabelId
	}
	return ""
}

func (x *SubmitDecisionRequest) GetDecision() string {
	if x != nil {
		return x.Decision
	}
	return ""
}

func (x *SubmitDecisionRequest) GetSpecialist() string {
	if x != nil {
		return x.Specialist
	}
	return ""
}

type SubmitDecisionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         *Label                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDecisionResponse) Reset() {
	*x = SubmitDecisionResponse{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDecisionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDecisionResponse) ProtoMessage() {}

func (x *SubmitDecisionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDecisionResponse.ProtoReflect.Descriptor instead.
func (*SubmitDecisionResponse) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{9}
}

func (x *SubmitDecisionResponse) GetLabel() *Label {
	if x != nil {
		return x.Label
	}
	return nil
}

type ProcessLabelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LabelId       string                 `protobuf:"bytes,1,opt,name=label_id,json=labelId,proto3" json:"label_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessLabelRequest) Reset() {
	*x = ProcessLabelRequest{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessLabelRequest) ProtoMessage() {}

func (x *ProcessLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessLabelRequest.ProtoReflect.Descriptor instead.
func (*ProcessLabelRequest) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{10}
}

func (x *ProcessLabelRequest) GetLabelId() string {
	if x != nil {
		return x.LabelId
	}
	return ""
}

type ProcessLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         *Label                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessLabelResponse) Reset() {
	*x = ProcessLabelResponse{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessLabelResponse) ProtoMessage() {}

func (x *ProcessLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessLabelResponse.ProtoReflect.Descriptor instead.
func (*ProcessLabelResponse) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{11}
}

func (x *ProcessLabelResponse) GetLabel() *Label {
	if x != nil {
		return x.Label
	}
	return nil
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{12}
}

func (x *ExportReportRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *ExportReportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{13}
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type GetBatchStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusRequest) Reset() {
	*x = GetBatchStatusRequest{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusRequest) ProtoMessage() {}

func (x *GetBatchStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusRequest.ProtoReflect.Descriptor instead.
func (*GetBatchStatusRequest) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{14}
}

func (x *GetBatchStatusRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type GetBatchStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *Batch                 `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	Labels        []*BatchLabel          `protobuf:"bytes,2,rep,name=labels,proto3" json:"labels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusResponse) Reset() {
	*x = GetBatchStatusResponse{}
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusResponse) ProtoMessage() {}

func (x *GetBatchStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelverify_v1_labelverify_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusResponse.ProtoReflect.Descriptor instead.
func (*GetBatchStatusResponse) Descriptor() ([]byte, []int) {
	return file_labelverify_v1_labelverify_proto_rawDescGZIP(), []int{15}
}

func (x *GetBatchStatusResponse) GetBatch() *Batch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *GetBatchStatusResponse) GetLabels() []*BatchLabel {
	if x != nil {
		return x.Labels
	}
	return nil
}

var File_labelverify_v1_labelverify_proto protoreflect.FileDescriptor

const file_labelverify_v1_labelverify_proto_rawDesc = "" +
	"\n" +
	" labelverify/v1/labelverify.proto\x12\x0elabelverify.v1\"\xd3\x04\n" +
	"\x05Label\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fapplicant_id\x18\x02 \x01(\tR\vapplicantId\x12\x19\n" +
	"\bbatch_id\x18\x03 \x01(\tR\abatchId\x12\x1d\n" +
	"\n" +
	"image_path\x18\x04 \x01(\tR\timagePath\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12#\n" +
	"\rstored_status\x18\x06 \x01(\tR\fstoredStatus\x12\x1d\n" +
	"\n" +
	"brand_name\x18\a \x01(\tR\tbrandName\x12#\n" +
	"\rbeverage_type\x18\b \x01(\tR\fbeverageType\x12'\n" +
	"\x0falcohol_content\x18\t \x01(\tR\x0ealcoholContent\x12-\n" +
	"\x12overall_confidence\x18\n" +
	" \x01(\x02R\x11overallConfidence\x12/\n" +
	"\x13correction_deadline\x18\v \x01(\tR\x12correctionDeadline\x12%\n" +
	"\x0edays_remaining\x18\f \x01(\x05R\rdaysRemaining\x12\x18\n" +
	"\aurgency\x18\r \x01(\tR\aurgency\x12/\n" +
	"\x13assigned_specialist\x18\x0e \x01(\tR\x12assignedSpecialist\x12#\n" +
	"\rerror_message\x18\x0f \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\xdb\x03\n" +
	"\x05Batch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fapplicant_id\x18\x02 \x01(\tR\vapplicantId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12!\n" +
	"\ftotal_labels\x18\x05 \x01(\x05R\vtotalLabels\x12'\n" +
	"\x0fprocessed_count\x18\x06 \x01(\x05R\x0eprocessedCount\x12%\n" +
	"\x0eapproved_count\x18\a \x01(\x05R\rapprovedCount\x12@\n" +
	"\x1cconditionally_approved_count\x18\b \x01(\x05R\x1aconditionallyApprovedCount\x12%\n" +
	"\x0erejected_count\x18\t \x01(\x05R\rrejectedCount\x124\n" +
	"\x16needs_correction_count\x18\n" +
	" \x01(\x05R\x14needsCorrectionCount\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"c\n" +
	"\n" +
	"BatchLabel\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12-\n" +
	"\x12overall_confidence\x18\x03 \x01(\x02R\x11overallConfidence\"\x9d\x01\n" +
	"\tApplicant\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x18\n" +
	"\acompany\x18\x04 \x01(\tR\acompany\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"l\n" +
	"\x11ListLabelsRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"C\n" +
	"\x12ListLabelsResponse\x12-\n" +
	"\x06labels\x18\x01 \x03(\v2\x15.labelverify.v1.LabelR\x06labels\",\n" +
	"\x0fGetLabelRequest\x12\x19\n" +
	"\blabel_id\x18\x01 \x01(\tR\alabelId\"?\n" +
	"\x10GetLabelResponse\x12+\n" +
	"\x05label\x18\x01 \x01(\v2\x15.labelverify.v1.LabelR\x05label\"n\n" +
	"\x15SubmitDecisionRequest\x12\x19\n" +
	"\blabel_id\x18\x01 \x01(\tR\alabelId\x12\x1a\n" +
	"\bdecision\x18\x02 \x01(\tR\bdecision\x12\x1e\n" +
	"\n" +
	"specialist\x18\x03 \x01(\tR\n" +
	"specialist\"E\n" +
	"\x16SubmitDecisionResponse\x12+\n" +
	"\x05label\x18\x01 \x01(\v2\x15.labelverify.v1.LabelR\x05label\"0\n" +
	"\x13ProcessLabelRequest\x12\x19\n" +
	"\blabel_id\x18\x01 \x01(\tR\alabelId\"C\n" +
	"\x14ProcessLabelResponse\x12+\n" +
	"\x05label\x18\x01 \x01(\v2\x15.labelverify.v1.LabelR\x05label\"n\n" +
	"\x13ExportReportRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"2\n" +
	"\x15GetBatchStatusRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"y\n" +
	"\x16GetBatchStatusResponse\x12+\n" +
	"\x05batch\x18\x01 \x01(\v2\x15.labelverify.v1.BatchR\x05batch\x122\n" +
	"\x06labels\x18\x02 \x03(\v2\x1a.labelverify.v1.BatchLabelR\x06labels2\xca\x03\n" +
	"\rLabelsService\x12S\n" +
	"\n" +
	"ListLabels\x12!.labelverify.v1.ListLabelsRequest\x1a\".labelverify.v1.ListLabelsResponse\x12M\n" +
	"\bGetLabel\x12\x1f.labelverify.v1.GetLabelRequest\x1a .labelverify.v1.GetLabelResponse\x12_\n" +
	"\x0eSubmitDecision\x12%.labelverify.v1.SubmitDecisionRequest\x1a&.labelverify.v1.SubmitDecisionResponse\x12Y\n" +
	"\fProcessLabel\x12#.labelverify.v1.ProcessLabelRequest\x1a$.labelverify.v1.ProcessLabelResponse\x12Y\n" +
	"\fExportReport\x12#.labelverify.v1.ExportReportRequest\x1a$.labelverify.v1.ExportReportResponse2q\n" +
	"\x0eBatchesService\x12_\n" +
	"\x0eGetBatchStatus\x12%.labelverify.v1.GetBatchStatusRequest\x1a&.labelverify.v1.GetBatchStatusResponseBHZFgithub.com/ttbcheck/labelverify/gen/proto/labelverify/v1;labelverifypbb\x06proto3"

var (
	file_labelverify_v1_labelverify_proto_rawDescOnce sync.Once
	file_labelverify_v1_labelverify_proto_rawDescData []byte
)

func file_labelverify_v1_labelverify_proto_rawDescGZIP() []byte {
	file_labelverify_v1_labelverify_proto_rawDescOnce.Do(func() {
		file_labelverify_v1_labelverify_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_labelverify_v1_labelverify_proto_rawDesc), len(file_labelverify_v1_labelverify_proto_rawDesc)))
	})
	return file_labelverify_v1_labelverify_proto_rawDescData
}

var file_labelverify_v1_labelverify_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_labelverify_v1_labelverify_proto_goTypes = []any{
	(*Label)(nil),                  // 0: labelverify.v1.Label
	(*Batch)(nil),                  // 1: labelverify.v1.Batch
	(*BatchLabel)(nil),             // 2: labelverify.v1.BatchLabel
	(*Applicant)(nil),              // 3: labelverify.v1.Applicant
	(*ListLabelsRequest)(nil),      // 4: labelverify.v1.ListLabelsRequest
	(*ListLabelsResponse)(nil),     // 5: labelverify.v1.ListLabelsResponse
	(*GetLabelRequest)(nil),        // 6: labelverify.v1.GetLabelRequest
	(*GetLabelResponse)(nil),       // 7: labelverify.v1.GetLabelResponse
	(*SubmitDecisionRequest)(nil),  // 8: labelverify.v1.SubmitDecisionRequest
	(*SubmitDecisionResponse)(nil), // 9: labelverify.v1.SubmitDecisionResponse
	(*ProcessLabelRequest)(nil),    // 10: labelverify.v1.ProcessLabelRequest
	(*ProcessLabelResponse)(nil),   // 11: labelverify.v1.ProcessLabelResponse
	(*ExportReportRequest)(nil),    // 12: labelverify.v1.ExportReportRequest
	(*ExportReportResponse)(nil),   // 13: labelverify.v1.ExportReportResponse
	(*GetBatchStatusRequest)(nil),  // 14: labelverify.v1.GetBatchStatusRequest
	(*GetBatchStatusResponse)(nil), // 15: labelverify.v1.GetBatchStatusResponse
}
var file_labelverify_v1_labelverify_proto_depIdxs = []int32{
	0,  // 0: labelverify.v1.ListLabelsResponse.labels:type_name -> labelverify.v1.Label
	0,  // 1: labelverify.v1.GetLabelResponse.label:type_name -> labelverify.v1.Label
	0,  // 2: labelverify.v1.SubmitDecisionResponse.label:type_name -> labelverify.v1.Label
	0,  // 3: labelverify.v1.ProcessLabelResponse.label:type_name -> labelverify.v1.Label
	1,  // 4: labelverify.v1.GetBatchStatusResponse.batch:type_name -> labelverify.v1.Batch
	2,  // 5: labelverify.v1.GetBatchStatusResponse.labels:type_name -> labelverify.v1.BatchLabel
	4,  // 6: labelverify.v1.LabelsService.ListLabels:input_type -> labelverify.v1.ListLabelsRequest
	6,  // 7: labelverify.v1.LabelsService.GetLabel:input_type -> labelverify.v1.GetLabelRequest
	8,  // 8: labelverify.v1.LabelsService.SubmitDecision:input_type -> labelverify.v1.SubmitDecisionRequest
	10, // 9: labelverify.v1.LabelsService.ProcessLabel:input_type -> labelverify.v1.ProcessLabelRequest
	12, // 10: labelverify.v1.LabelsService.ExportReport:input_type -> labelverify.v1.ExportReportRequest
	14, // 11: labelverify.v1.BatchesService.GetBatchStatus:input_type -> labelverify.v1.GetBatchStatusRequest
	5,  // 12: labelverify.v1.LabelsService.ListLabels:output_type -> labelverify.v1.ListLabelsResponse
	7,  // 13: labelverify.v1.LabelsService.GetLabel:output_type -> labelverify.v1.GetLabelResponse
	9,  // 14: labelverify.v1.LabelsService.SubmitDecision:output_type -> labelverify.v1.SubmitDecisionResponse
	11, // 15: labelverify.v1.LabelsService.ProcessLabel:output_type -> labelverify.v1.ProcessLabelResponse
	13, // 16: labelverify.v1.LabelsService.ExportReport:output_type -> labelverify.v1.ExportReportResponse
	15, // 17: labelverify.v1.BatchesService.GetBatchStatus:output_type -> labelverify.v1.GetBatchStatusResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_labelverify_v1_labelverify_proto_init() }
func file_labelverify_v1_labelverify_proto_init() {
	if File_labelverify_v1_labelverify_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_labelverify_v1_labelverify_proto_rawDesc), len(file_labelverify_v1_labelverify_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_labelverify_v1_labelverify_proto_goTypes,
		DependencyIndexes: file_labelverify_v1_labelverify_proto_depIdxs,
		MessageInfos:      file_labelverify_v1_labelverify_proto_msgTypes,
	}.Build()
	File_labelverify_v1_labelverify_proto = out.File
	file_labelverify_v1_labelverify_proto_goTypes = nil
	file_labelverify_v1_labelverify_proto_depIdxs = nil
}
